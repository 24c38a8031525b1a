// Package ledger is the deposit/payout collaborator boundary. The core only
// records simple flags and totals against it; chain-specific transaction
// handling lives behind this interface.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Ledger records entry-fee deposits per room and triggers the winner payout
type Ledger interface {
	// RegisterRoom announces a new room to the ledger. Best-effort: callers
	// log and swallow failures.
	RegisterRoom(ctx context.Context, roomID, depositWei, treasury string) error
	// RecordDeposit notes one player's confirmed deposit transaction
	RecordDeposit(ctx context.Context, roomID, playerID, txRef, wallet string) error
	// RequestPayout asks for the pot to be paid out to the winner and
	// returns the payout transaction reference
	RequestPayout(ctx context.Context, roomID, winnerID string) (string, error)
}

type roomRecord struct {
	depositWei string
	treasury   string
	deposits   map[string]string // playerID -> txRef
	payoutTx   string
}

// Memory is an in-process ledger that records deposits and fabricates payout
// references. It stands in for the on-chain treasury integration.
type Memory struct {
	mu     sync.Mutex
	rooms  map[string]*roomRecord
	logger *slog.Logger
}

// NewMemory creates an empty in-memory ledger
func NewMemory(logger *slog.Logger) *Memory {
	return &Memory{
		rooms:  make(map[string]*roomRecord),
		logger: logger,
	}
}

// RegisterRoom opens a ledger record for the room
func (m *Memory) RegisterRoom(_ context.Context, roomID, depositWei, treasury string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rooms[roomID] = &roomRecord{
		depositWei: depositWei,
		treasury:   treasury,
		deposits:   make(map[string]string),
	}
	m.logger.Info("ledger room registered", "roomID", roomID, "depositWei", depositWei)
	return nil
}

// RecordDeposit notes a player's confirmed deposit
func (m *Memory) RecordDeposit(_ context.Context, roomID, playerID, txRef, wallet string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.rooms[roomID]
	if !ok {
		return fmt.Errorf("ledger: unknown room %s", roomID)
	}

	record.deposits[playerID] = txRef
	m.logger.Info("ledger deposit recorded",
		"roomID", roomID,
		"playerID", playerID,
		"txRef", txRef,
		"wallet", wallet,
	)
	return nil
}

// RequestPayout issues a payout reference for the winner
func (m *Memory) RequestPayout(_ context.Context, roomID, winnerID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.rooms[roomID]
	if !ok {
		return "", fmt.Errorf("ledger: unknown room %s", roomID)
	}

	txRef := "payout-" + uuid.New().String()
	record.payoutTx = txRef
	m.logger.Info("ledger payout requested", "roomID", roomID, "winnerID", winnerID, "txRef", txRef)
	return txRef, nil
}
