package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"fancards/internal/domain"
)

// Memory is an in-process document store. Documents are kept as JSON blobs
// so readers always get an independent snapshot, matching the semantics of
// the redis store.
type Memory struct {
	mu    sync.RWMutex
	rooms map[string][]byte
	games map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		rooms: make(map[string][]byte),
		games: make(map[string][]byte),
	}
}

// SaveRoom stores a room snapshot
func (m *Memory) SaveRoom(_ context.Context, room *domain.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("marshal room: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[room.ID] = data
	return nil
}

// GetRoom retrieves a room by id
func (m *Memory) GetRoom(_ context.Context, roomID string) (*domain.Room, error) {
	m.mu.RLock()
	data, ok := m.rooms[roomID]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	var room domain.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("unmarshal room: %w", err)
	}
	return &room, nil
}

// DeleteRoom removes a room document
func (m *Memory) DeleteRoom(_ context.Context, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, roomID)
	return nil
}

// ListRoomsByState returns matching rooms, most recently created first
func (m *Memory) ListRoomsByState(_ context.Context, state domain.RoomState) ([]*domain.Room, error) {
	m.mu.RLock()
	blobs := make([][]byte, 0, len(m.rooms))
	for _, data := range m.rooms {
		blobs = append(blobs, data)
	}
	m.mu.RUnlock()

	rooms := make([]*domain.Room, 0, len(blobs))
	for _, data := range blobs {
		var room domain.Room
		if err := json.Unmarshal(data, &room); err != nil {
			return nil, fmt.Errorf("unmarshal room: %w", err)
		}
		if room.GameState == state {
			rooms = append(rooms, &room)
		}
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})
	return rooms, nil
}

// SaveGame stores a game session snapshot keyed by its room id
func (m *Memory) SaveGame(_ context.Context, game *domain.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[game.RoomID] = data
	return nil
}

// GetGame retrieves the session for a room
func (m *Memory) GetGame(_ context.Context, roomID string) (*domain.Game, error) {
	m.mu.RLock()
	data, ok := m.games[roomID]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.ErrGameNotFound
	}

	var game domain.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("unmarshal game: %w", err)
	}
	return &game, nil
}

// DeleteGame removes a session document
func (m *Memory) DeleteGame(_ context.Context, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, roomID)
	return nil
}
