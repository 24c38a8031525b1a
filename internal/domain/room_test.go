package domain

import (
	"errors"
	"testing"
)

func testRoom(maxPlayers int) *Room {
	settings := RoomSettings{MaxRounds: 5, RoundTimer: 90, MaxPlayers: maxPlayers, MinPlayers: 2}
	creator := NewPlayer("p1", "Ada", nil)
	return NewRoom("room-1", "Friday Night", settings, creator)
}

func TestRoomSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings RoomSettings
		wantErr  error
	}{
		{"valid", RoomSettings{MaxRounds: 5, RoundTimer: 90, MaxPlayers: 8, MinPlayers: 2}, nil},
		{"zero min", RoomSettings{MaxRounds: 5, RoundTimer: 90, MaxPlayers: 8, MinPlayers: 0}, ErrInvalidSettings},
		{"zero max", RoomSettings{MaxRounds: 5, RoundTimer: 90, MaxPlayers: 0, MinPlayers: 2}, ErrInvalidSettings},
		{"min above max", RoomSettings{MaxRounds: 5, RoundTimer: 90, MaxPlayers: 2, MinPlayers: 4}, ErrInvalidSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.settings.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddPlayerCapacity(t *testing.T) {
	room := testRoom(2)

	if err := room.AddPlayer(NewPlayer("p2", "Ben", nil)); err != nil {
		t.Fatalf("add within capacity: %v", err)
	}
	if err := room.AddPlayer(NewPlayer("p3", "Cleo", nil)); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("add beyond capacity error = %v, want ErrRoomFull", err)
	}
}

func TestAddPlayerDuringGame(t *testing.T) {
	room := testRoom(8)
	room.GameState = RoomPlaying

	if err := room.AddPlayer(NewPlayer("p2", "Ben", nil)); !errors.Is(err, ErrGameInProgress) {
		t.Fatalf("add during game error = %v, want ErrGameInProgress", err)
	}
}

func TestRemovePlayerKeepsJoinOrder(t *testing.T) {
	room := testRoom(8)
	room.AddPlayer(NewPlayer("p2", "Ben", nil))
	room.AddPlayer(NewPlayer("p3", "Cleo", nil))

	if !room.RemovePlayer("p2") {
		t.Fatalf("remove existing player returned false")
	}
	if room.RemovePlayer("p2") {
		t.Fatalf("remove absent player returned true")
	}
	if len(room.Players) != 2 || room.Players[0].ID != "p1" || room.Players[1].ID != "p3" {
		t.Fatalf("players after removal = %v, want [p1 p3]", room.Players)
	}
}

func TestSetReady(t *testing.T) {
	room := testRoom(8)

	if err := room.SetReady("p1", true); err != nil {
		t.Fatalf("set ready: %v", err)
	}
	if !room.Players[0].IsReady {
		t.Fatalf("player not marked ready")
	}
	if err := room.SetReady("ghost", true); !errors.Is(err, ErrPlayerNotInRoom) {
		t.Fatalf("set ready for stranger error = %v, want ErrPlayerNotInRoom", err)
	}
}

func TestCanStart(t *testing.T) {
	room := testRoom(8)
	room.AddPlayer(NewPlayer("p2", "Ben", nil))

	if room.CanStart(false) {
		t.Fatalf("can start with nobody ready")
	}

	room.SetReady("p1", true)
	room.SetReady("p2", true)
	if !room.CanStart(false) {
		t.Fatalf("cannot start with everyone ready")
	}

	// Deposits required but none confirmed.
	if room.CanStart(true) {
		t.Fatalf("can start with deposits required but missing")
	}

	room.DepositAmount = "1000000000"
	room.RecordDeposit("p1", "0xaaa", "0x111")
	room.RecordDeposit("p2", "0xbbb", "0x222")
	if !room.CanStart(true) {
		t.Fatalf("cannot start with all deposits confirmed")
	}
}

func TestCanStartBelowMinimum(t *testing.T) {
	room := testRoom(8)
	room.SetReady("p1", true)

	if room.CanStart(false) {
		t.Fatalf("solo room can start with MinPlayers=2")
	}
}

func TestRecordDepositGrowsPot(t *testing.T) {
	room := testRoom(8)
	room.AddPlayer(NewPlayer("p2", "Ben", nil))
	room.DepositAmount = "1000000000"

	if err := room.RecordDeposit("p1", "0xaaa", "0x111"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := room.RecordDeposit("p2", "0xbbb", "0x222"); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if room.TotalPot != "2000000000" {
		t.Fatalf("pot = %s, want 2000000000", room.TotalPot)
	}
	p, _ := room.Player("p1")
	if !p.HasDeposited || p.DepositTxHash != "0xaaa" || p.WalletAddress != "0x111" {
		t.Fatalf("deposit metadata not recorded: %+v", p)
	}

	if err := room.RecordDeposit("ghost", "0xccc", "0x333"); !errors.Is(err, ErrPlayerNotInRoom) {
		t.Fatalf("stranger deposit error = %v, want ErrPlayerNotInRoom", err)
	}
}

func TestMatchesCode(t *testing.T) {
	room := testRoom(8)
	room.ID = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		code string
		want bool
	}{
		{"440000", true},
		{"44_0000", false},
		{"ABCDEF", false},
		{"", false},
		{"0000", true},
	}

	for _, tt := range tests {
		if got := room.MatchesCode(tt.code); got != tt.want {
			t.Fatalf("MatchesCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestMatchesCodeCaseInsensitive(t *testing.T) {
	room := testRoom(8)
	room.ID = "room-ABC123"

	if !room.MatchesCode("abc123") {
		t.Fatalf("lowercase code should match uppercase id suffix")
	}
	if !room.MatchesCode("ABC123") {
		t.Fatalf("uppercase code should match")
	}
}

func TestRemoveFromHand(t *testing.T) {
	hand := []AnswerCard{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}, {ID: "a4"}}
	player := NewPlayer("p1", "Ada", hand)

	player.RemoveFromHand([]string{"a2", "a4", "missing"})

	if len(player.Hand) != 2 || player.Hand[0].ID != "a1" || player.Hand[1].ID != "a3" {
		t.Fatalf("hand after removal = %v, want [a1 a3]", player.Hand)
	}
}

func TestResetForReplay(t *testing.T) {
	player := NewPlayer("p1", "Ada", []AnswerCard{{ID: "a1"}})
	player.IsReady = true
	player.Score = 10

	fresh := []AnswerCard{{ID: "b1"}, {ID: "b2"}}
	player.ResetForReplay(fresh)

	if player.IsReady {
		t.Fatalf("ready flag survived reset")
	}
	if player.Score != 10 {
		t.Fatalf("score = %d, want 10 preserved across replay", player.Score)
	}
	if len(player.Hand) != 2 {
		t.Fatalf("hand = %d cards, want fresh hand of 2", len(player.Hand))
	}
}
