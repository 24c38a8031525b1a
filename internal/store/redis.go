package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"fancards/internal/domain"
)

const (
	roomKeyPrefix = "room:"
	gameKeyPrefix = "game:"
	roomIndexKey  = "rooms:index"
)

// Redis persists rooms and games as JSON blobs in a redis instance
type Redis struct {
	client *redis.Client
}

// NewRedis creates a redis-backed store and verifies the connection
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Redis{client: client}, nil
}

// Close releases the underlying connection pool
func (r *Redis) Close() error {
	return r.client.Close()
}

// SaveRoom stores a room snapshot and indexes its id
func (r *Redis) SaveRoom(ctx context.Context, room *domain.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("marshal room: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, roomKeyPrefix+room.ID, data, 0)
	pipe.SAdd(ctx, roomIndexKey, room.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	return nil
}

// GetRoom retrieves a room by id
func (r *Redis) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	data, err := r.client.Get(ctx, roomKeyPrefix+roomID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("unmarshal room: %w", err)
	}
	return &room, nil
}

// DeleteRoom removes a room document and its index entry
func (r *Redis) DeleteRoom(ctx context.Context, roomID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, roomKeyPrefix+roomID)
	pipe.SRem(ctx, roomIndexKey, roomID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

// ListRoomsByState returns matching rooms, most recently created first
func (r *Redis) ListRoomsByState(ctx context.Context, state domain.RoomState) ([]*domain.Room, error) {
	ids, err := r.client.SMembers(ctx, roomIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list room ids: %w", err)
	}

	rooms := make([]*domain.Room, 0, len(ids))
	for _, id := range ids {
		room, err := r.GetRoom(ctx, id)
		if errors.Is(err, domain.ErrRoomNotFound) {
			// Index entry outlived its document; drop it.
			r.client.SRem(ctx, roomIndexKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		if room.GameState == state {
			rooms = append(rooms, room)
		}
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})
	return rooms, nil
}

// SaveGame stores a game session snapshot keyed by its room id
func (r *Redis) SaveGame(ctx context.Context, game *domain.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}

	if err := r.client.Set(ctx, gameKeyPrefix+game.RoomID, data, 0).Err(); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// GetGame retrieves the session for a room
func (r *Redis) GetGame(ctx context.Context, roomID string) (*domain.Game, error) {
	data, err := r.client.Get(ctx, gameKeyPrefix+roomID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game: %w", err)
	}

	var game domain.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("unmarshal game: %w", err)
	}
	return &game, nil
}

// DeleteGame removes a session document
func (r *Redis) DeleteGame(ctx context.Context, roomID string) error {
	if err := r.client.Del(ctx, gameKeyPrefix+roomID).Err(); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}
