package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"fancards/internal/deck"
	"fancards/internal/domain"
	"fancards/internal/ledger"
	"fancards/internal/store"
)

// DefaultCreatorName is used when a room creator gives no display name
const DefaultCreatorName = "Host"

// Config holds the game parameters shared by the registry and engine
type Config struct {
	HandSize         int
	DepositsRequired bool
	DepositAmountWei string
	TreasuryAddress  string
	DefaultSettings  domain.RoomSettings
}

// Registry owns room entities: creation, join/leave, readiness, disconnect
// bookkeeping and deposit flags
type Registry struct {
	store  store.Store
	deck   *deck.Deck
	ledger ledger.Ledger
	locks  *RoomLocks
	cfg    Config
	logger *slog.Logger
}

// NewRegistry creates a room registry
func NewRegistry(st store.Store, dk *deck.Deck, lg ledger.Ledger, locks *RoomLocks, cfg Config, logger *slog.Logger) *Registry {
	return &Registry{
		store:  st,
		deck:   dk,
		ledger: lg,
		locks:  locks,
		cfg:    cfg,
		logger: logger,
	}
}

// applyDefaults fills zero-valued settings fields from the configured defaults
func (r *Registry) applyDefaults(settings domain.RoomSettings) domain.RoomSettings {
	defaults := r.cfg.DefaultSettings
	if settings.MaxRounds <= 0 {
		settings.MaxRounds = defaults.MaxRounds
	}
	if settings.RoundTimer <= 0 {
		settings.RoundTimer = defaults.RoundTimer
	}
	if settings.MaxPlayers == 0 {
		settings.MaxPlayers = defaults.MaxPlayers
	}
	if settings.MinPlayers == 0 {
		settings.MinPlayers = defaults.MinPlayers
	}
	return settings
}

// CreateRoom constructs a waiting room with the creator as its sole player.
// The ledger registration is best-effort: a failure is logged, not fatal.
func (r *Registry) CreateRoom(ctx context.Context, name string, settings domain.RoomSettings, creatorName string) (*domain.Room, *domain.Player, error) {
	settings = r.applyDefaults(settings)
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	if creatorName == "" {
		creatorName = DefaultCreatorName
	}

	hand, err := r.deck.DrawHand(r.cfg.HandSize)
	if err != nil {
		return nil, nil, err
	}

	creator := domain.NewPlayer(uuid.New().String(), creatorName, hand)
	room := domain.NewRoom(uuid.New().String(), name, settings, creator)
	room.DepositAmount = r.cfg.DepositAmountWei
	room.TreasuryWallet = r.cfg.TreasuryAddress

	if err := r.store.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	if err := r.ledger.RegisterRoom(ctx, room.ID, room.DepositAmount, room.TreasuryWallet); err != nil {
		r.logger.Warn("ledger registration failed", "roomID", room.ID, "error", err)
	}

	r.logger.Info("room created", "roomID", room.ID, "name", name)
	return room, creator, nil
}

// JoinRoom appends a new player to an existing waiting room
func (r *Registry) JoinRoom(ctx context.Context, roomID, displayName string) (*domain.Room, *domain.Player, error) {
	unlock := r.locks.Lock(roomID)
	defer unlock()

	room, err := r.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	hand, err := r.deck.DrawHand(r.cfg.HandSize)
	if err != nil {
		return nil, nil, err
	}

	player := domain.NewPlayer(uuid.New().String(), displayName, hand)
	if err := room.AddPlayer(player); err != nil {
		return nil, nil, err
	}

	if err := r.store.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	r.logger.Info("player joined", "roomID", roomID, "playerID", player.ID)
	return room, player, nil
}

// JoinRoomByCode resolves a short code against the trailing characters of
// every open room's id and joins the first match
func (r *Registry) JoinRoomByCode(ctx context.Context, code, displayName string) (*domain.Room, *domain.Player, error) {
	rooms, err := r.store.ListRoomsByState(ctx, domain.RoomWaiting)
	if err != nil {
		return nil, nil, err
	}

	for _, room := range rooms {
		if room.MatchesCode(code) {
			return r.JoinRoom(ctx, room.ID, displayName)
		}
	}
	return nil, nil, domain.ErrRoomNotFound
}

// LeaveRoom removes the player from the room. An empty room is destroyed.
// Returns the updated room, or nil when the room no longer exists.
func (r *Registry) LeaveRoom(ctx context.Context, roomID, playerID string) (*domain.Room, error) {
	unlock := r.locks.Lock(roomID)
	defer unlock()

	room, err := r.store.GetRoom(ctx, roomID)
	if errors.Is(err, domain.ErrRoomNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !room.RemovePlayer(playerID) {
		// Stale mapping, nothing to do.
		return room, nil
	}

	if room.IsEmpty() {
		if err := r.store.DeleteRoom(ctx, roomID); err != nil {
			return nil, err
		}
		if err := r.store.DeleteGame(ctx, roomID); err != nil {
			return nil, err
		}
		r.locks.Forget(roomID)
		r.logger.Info("room destroyed", "roomID", roomID)
		return nil, nil
	}

	if err := r.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ToggleReady sets a player's readiness flag
func (r *Registry) ToggleReady(ctx context.Context, roomID, playerID string, isReady bool) (*domain.Room, error) {
	unlock := r.locks.Lock(roomID)
	defer unlock()

	room, err := r.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if err := room.SetReady(playerID, isReady); err != nil {
		return nil, err
	}

	if err := r.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ListOpenRooms returns all waiting rooms, most recently created first
func (r *Registry) ListOpenRooms(ctx context.Context) ([]*domain.Room, error) {
	return r.store.ListRoomsByState(ctx, domain.RoomWaiting)
}

// RecordDisconnect marks the player disconnected without removing them.
// Silently returns the room unchanged when the room or player is gone.
func (r *Registry) RecordDisconnect(ctx context.Context, roomID, playerID string) (*domain.Room, error) {
	unlock := r.locks.Lock(roomID)
	defer unlock()

	room, err := r.store.GetRoom(ctx, roomID)
	if errors.Is(err, domain.ErrRoomNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	player, ok := room.Player(playerID)
	if !ok {
		return room, nil
	}

	player.Disconnect()
	if err := r.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	r.logger.Info("player disconnected", "roomID", roomID, "playerID", playerID)
	return room, nil
}

// RecordDeposit flags the player's confirmed deposit and grows the room pot
func (r *Registry) RecordDeposit(ctx context.Context, roomID, playerID, txHash, walletAddress string) (*domain.Room, error) {
	unlock := r.locks.Lock(roomID)
	defer unlock()

	room, err := r.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if err := room.RecordDeposit(playerID, txHash, walletAddress); err != nil {
		return nil, err
	}

	if err := r.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// RecordPayout notes the winner payout confirmation on the room
func (r *Registry) RecordPayout(ctx context.Context, roomID, winnerID, txHash string) (*domain.Room, error) {
	unlock := r.locks.Lock(roomID)
	defer unlock()

	room, err := r.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	room.Winner = winnerID
	room.PayoutTxHash = txHash

	if err := r.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// CanStartGame reports whether the room satisfies every start precondition
func (r *Registry) CanStartGame(ctx context.Context, roomID string) (bool, error) {
	room, err := r.store.GetRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	return room.CanStart(r.cfg.DepositsRequired), nil
}
