// Package store persists rooms and game sessions as opaque documents.
// The memory implementation backs tests and single-node deployments;
// the redis implementation shares state across restarts.
package store

import (
	"context"

	"fancards/internal/domain"
)

// Store is the document store consumed by the room registry and round engine.
// Lookups for missing documents return domain.ErrRoomNotFound or
// domain.ErrGameNotFound.
type Store interface {
	SaveRoom(ctx context.Context, room *domain.Room) error
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
	// ListRoomsByState returns matching rooms, most recently created first
	ListRoomsByState(ctx context.Context, state domain.RoomState) ([]*domain.Room, error)

	SaveGame(ctx context.Context, game *domain.Game) error
	GetGame(ctx context.Context, roomID string) (*domain.Game, error)
	DeleteGame(ctx context.Context, roomID string) error
}
