package domain

import (
	"math/big"
	"strings"
	"time"
)

// RoomState is the lifecycle state of a room
type RoomState string

const (
	RoomWaiting  RoomState = "waiting"
	RoomPlaying  RoomState = "playing"
	RoomFinished RoomState = "finished"
)

// RoomSettings holds the configurable parameters of one room
type RoomSettings struct {
	MaxRounds  int `json:"maxRounds"`
	RoundTimer int `json:"roundTimer"` // seconds, advisory display state
	MaxPlayers int `json:"maxPlayers"`
	MinPlayers int `json:"minPlayers"`
}

// Validate checks the capacity bounds
func (s RoomSettings) Validate() error {
	if s.MinPlayers <= 0 || s.MaxPlayers <= 0 {
		return ErrInvalidSettings
	}
	if s.MinPlayers > s.MaxPlayers {
		return ErrInvalidSettings
	}
	return nil
}

// Room is a lobby/table. Players are kept in join order.
type Room struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Players    []*Player    `json:"players"`
	MaxPlayers int          `json:"maxPlayers"`
	IsPrivate  bool         `json:"isPrivate"`
	GameState  RoomState    `json:"gameState"`
	Settings   RoomSettings `json:"settings"`
	CreatedAt  time.Time    `json:"createdAt"`
	CreatedBy  string       `json:"createdBy"`

	// Deposit metadata, all amounts in wei
	DepositAmount  string `json:"depositAmount"`
	TotalPot       string `json:"totalPot"`
	TreasuryWallet string `json:"treasureWallet"`
	Winner         string `json:"winner,omitempty"`
	PayoutTxHash   string `json:"payoutTxHash,omitempty"`
}

// NewRoom creates a waiting room with the creator as its sole player
func NewRoom(id, name string, settings RoomSettings, creator *Player) *Room {
	return &Room{
		ID:         id,
		Name:       name,
		Players:    []*Player{creator},
		MaxPlayers: settings.MaxPlayers,
		IsPrivate:  false,
		GameState:  RoomWaiting,
		Settings:   settings,
		CreatedAt:  time.Now(),
		CreatedBy:  creator.ID,
		TotalPot:   "0",
	}
}

// AddPlayer appends a player in join order
func (r *Room) AddPlayer(player *Player) error {
	if len(r.Players) >= r.MaxPlayers {
		return ErrRoomFull
	}
	if r.GameState != RoomWaiting {
		return ErrGameInProgress
	}

	r.Players = append(r.Players, player)
	return nil
}

// RemovePlayer removes a player, keeping join order intact.
// Returns false if the player was not in the room.
func (r *Room) RemovePlayer(playerID string) bool {
	for i, p := range r.Players {
		if p.ID == playerID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

// Player returns the player with the given id
func (r *Room) Player(playerID string) (*Player, bool) {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

// IsEmpty reports whether the room has no players left
func (r *Room) IsEmpty() bool {
	return len(r.Players) == 0
}

// SetReady toggles a player's readiness flag
func (r *Room) SetReady(playerID string, isReady bool) error {
	player, ok := r.Player(playerID)
	if !ok {
		return ErrPlayerNotInRoom
	}
	player.IsReady = isReady
	return nil
}

// CanStart reports whether a game session may begin: enough players, everyone
// ready, and every deposit confirmed when deposits are required
func (r *Room) CanStart(depositsRequired bool) bool {
	if len(r.Players) < r.Settings.MinPlayers {
		return false
	}
	for _, p := range r.Players {
		if !p.IsReady {
			return false
		}
		if depositsRequired && !p.HasDeposited {
			return false
		}
	}
	return true
}

// RecordDeposit flags a player's confirmed deposit and grows the pot by the
// room's per-player deposit amount
func (r *Room) RecordDeposit(playerID, txHash, walletAddress string) error {
	player, ok := r.Player(playerID)
	if !ok {
		return ErrPlayerNotInRoom
	}

	player.HasDeposited = true
	player.DepositTxHash = txHash
	player.WalletAddress = walletAddress

	pot, ok := new(big.Int).SetString(r.TotalPot, 10)
	if !ok {
		pot = big.NewInt(0)
	}
	amount, ok := new(big.Int).SetString(r.DepositAmount, 10)
	if !ok {
		amount = big.NewInt(0)
	}
	r.TotalPot = pot.Add(pot, amount).String()

	return nil
}

// MatchesCode reports whether the given short code matches the trailing
// characters of the room id, case-insensitively
func (r *Room) MatchesCode(code string) bool {
	if code == "" {
		return false
	}
	id := strings.ToLower(r.ID)
	code = strings.ToLower(code)
	return strings.HasSuffix(id, code)
}
