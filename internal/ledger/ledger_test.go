package ledger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func newTestLedger() *Memory {
	return NewMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDepositAndPayoutFlow(t *testing.T) {
	ctx := context.Background()
	m := newTestLedger()

	if err := m.RegisterRoom(ctx, "r1", "1000000000", "0xtreasury"); err != nil {
		t.Fatalf("register room: %v", err)
	}
	if err := m.RecordDeposit(ctx, "r1", "p1", "0xaaa", "0x111"); err != nil {
		t.Fatalf("record deposit: %v", err)
	}

	txRef, err := m.RequestPayout(ctx, "r1", "p1")
	if err != nil {
		t.Fatalf("request payout: %v", err)
	}
	if !strings.HasPrefix(txRef, "payout-") {
		t.Fatalf("payout ref = %q, want payout- prefix", txRef)
	}
}

func TestUnknownRoomRejected(t *testing.T) {
	ctx := context.Background()
	m := newTestLedger()

	if err := m.RecordDeposit(ctx, "ghost", "p1", "0xaaa", "0x111"); err == nil {
		t.Fatalf("deposit against unknown room accepted")
	}
	if _, err := m.RequestPayout(ctx, "ghost", "p1"); err == nil {
		t.Fatalf("payout against unknown room accepted")
	}
}
