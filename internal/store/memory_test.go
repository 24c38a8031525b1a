package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"fancards/internal/domain"
)

func testRoom(id string, state domain.RoomState, createdAt time.Time) *domain.Room {
	settings := domain.RoomSettings{MaxRounds: 5, RoundTimer: 90, MaxPlayers: 8, MinPlayers: 2}
	room := domain.NewRoom(id, "room "+id, settings, domain.NewPlayer("p-"+id, "Host", nil))
	room.GameState = state
	room.CreatedAt = createdAt
	return room
}

func TestSaveAndGetRoom(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	room := testRoom("r1", domain.RoomWaiting, time.Now())
	if err := m.SaveRoom(ctx, room); err != nil {
		t.Fatalf("save room: %v", err)
	}

	got, err := m.GetRoom(ctx, "r1")
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if got.ID != "r1" || got.Name != "room r1" {
		t.Fatalf("got room %+v", got)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	m := NewMemory()

	if _, err := m.GetRoom(context.Background(), "ghost"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("error = %v, want ErrRoomNotFound", err)
	}
}

func TestGetRoomReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	room := testRoom("r1", domain.RoomWaiting, time.Now())
	if err := m.SaveRoom(ctx, room); err != nil {
		t.Fatalf("save room: %v", err)
	}

	first, err := m.GetRoom(ctx, "r1")
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	first.Name = "mutated"

	second, err := m.GetRoom(ctx, "r1")
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if second.Name != "room r1" {
		t.Fatalf("stored room mutated through a read copy: %s", second.Name)
	}
}

func TestDeleteRoom(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.SaveRoom(ctx, testRoom("r1", domain.RoomWaiting, time.Now())); err != nil {
		t.Fatalf("save room: %v", err)
	}
	if err := m.DeleteRoom(ctx, "r1"); err != nil {
		t.Fatalf("delete room: %v", err)
	}
	if _, err := m.GetRoom(ctx, "r1"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("error after delete = %v, want ErrRoomNotFound", err)
	}
	// Deleting again is not an error.
	if err := m.DeleteRoom(ctx, "r1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestListRoomsByState(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Now()

	m.SaveRoom(ctx, testRoom("r1", domain.RoomWaiting, base.Add(-2*time.Minute)))
	m.SaveRoom(ctx, testRoom("r2", domain.RoomPlaying, base.Add(-1*time.Minute)))
	m.SaveRoom(ctx, testRoom("r3", domain.RoomWaiting, base))

	waiting, err := m.ListRoomsByState(ctx, domain.RoomWaiting)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(waiting) != 2 {
		t.Fatalf("waiting rooms = %d, want 2", len(waiting))
	}
	// Most recently created first.
	if waiting[0].ID != "r3" || waiting[1].ID != "r1" {
		t.Fatalf("order = [%s %s], want [r3 r1]", waiting[0].ID, waiting[1].ID)
	}
}

func TestSaveAndGetGame(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	players := []*domain.Player{domain.NewPlayer("p1", "Ada", nil)}
	game := domain.NewGame("r1", "p1", domain.PromptCard{ID: "q1", Text: "___?", Blanks: 1}, players, 90)
	if err := m.SaveGame(ctx, game); err != nil {
		t.Fatalf("save game: %v", err)
	}

	got, err := m.GetGame(ctx, "r1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.RoomID != "r1" || got.CurrentRound != 1 {
		t.Fatalf("got game %+v", got)
	}

	if _, err := m.GetGame(ctx, "ghost"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("error = %v, want ErrGameNotFound", err)
	}

	if err := m.DeleteGame(ctx, "r1"); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if _, err := m.GetGame(ctx, "r1"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("error after delete = %v, want ErrGameNotFound", err)
	}
}
