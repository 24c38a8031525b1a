package app

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"fancards/internal/deck"
	"fancards/internal/domain"
	"fancards/internal/store"
)

// Engine owns the per-room game session: picker selection, submission
// collection, judging, scoring and round/game completion. It has no
// dependency on the transport layer.
type Engine struct {
	store  store.Store
	deck   *deck.Deck
	locks  *RoomLocks
	cfg    Config
	logger *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewEngine creates a round engine sharing the registry's room locks
func NewEngine(st store.Store, dk *deck.Deck, locks *RoomLocks, cfg Config, rng *rand.Rand, logger *slog.Logger) *Engine {
	return &Engine{
		store:  st,
		deck:   dk,
		locks:  locks,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
	}
}

// pickRandom selects a uniformly random picker from the room's players.
// Repeats across rounds are allowed; there is no rotation or immunity.
func (e *Engine) pickRandom(room *domain.Room) string {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return room.Players[e.rng.Intn(len(room.Players))].ID
}

// Start transitions a waiting room into a playing session at round 1
func (e *Engine) Start(ctx context.Context, roomID string) (*domain.Game, error) {
	unlock := e.locks.Lock(roomID)
	defer unlock()

	room, err := e.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.GameState != domain.RoomWaiting {
		return nil, domain.ErrGameInProgress
	}
	if len(room.Players) < room.Settings.MinPlayers {
		return nil, domain.ErrNotEnoughPlayers
	}
	if !room.CanStart(e.cfg.DepositsRequired) {
		return nil, domain.ErrPlayersNotReady
	}

	picker := e.pickRandom(room)
	game := domain.NewGame(roomID, picker, e.deck.PickPrompt(), room.Players, room.Settings.RoundTimer)

	room.GameState = domain.RoomPlaying
	if err := e.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	if err := e.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	e.logger.Info("game started", "roomID", roomID, "picker", picker)
	return game, nil
}

// Submit records one player's answer for the current round and consumes the
// submitted cards from their hand. The second return value reports whether
// the submission completed the round, flipping the phase to judging. That
// check runs against the submission count re-read under the room lock, so
// two racing final submissions flip the phase exactly once.
func (e *Engine) Submit(ctx context.Context, roomID, playerID string, cards []domain.AnswerCard) (*domain.Game, bool, error) {
	unlock := e.locks.Lock(roomID)
	defer unlock()

	game, err := e.store.GetGame(ctx, roomID)
	if err != nil {
		return nil, false, err
	}
	room, err := e.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, false, err
	}
	player, ok := room.Player(playerID)
	if !ok {
		return nil, false, domain.ErrPlayerNotInRoom
	}

	if err := game.Submit(playerID, cards); err != nil {
		return nil, false, err
	}

	cardIDs := make([]string, 0, len(cards))
	for _, c := range cards {
		cardIDs = append(cardIDs, c.ID)
	}
	player.RemoveFromHand(cardIDs)

	judging := game.MaybeBeginJudging(len(room.Players))

	if err := e.store.SaveGame(ctx, game); err != nil {
		return nil, false, err
	}
	if err := e.store.SaveRoom(ctx, room); err != nil {
		return nil, false, err
	}

	return game, judging, nil
}

// JudgePick awards the round to the chosen submission. The session score
// table and the room player's score are updated under the same room lock so
// readers always see them agree.
func (e *Engine) JudgePick(ctx context.Context, roomID, pickerID string, submissionIndex int) (*domain.Game, error) {
	unlock := e.locks.Lock(roomID)
	defer unlock()

	game, err := e.store.GetGame(ctx, roomID)
	if err != nil {
		return nil, err
	}
	room, err := e.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	winning, err := game.JudgePick(pickerID, submissionIndex)
	if err != nil {
		return nil, err
	}

	if player, ok := room.Player(winning.PlayerID); ok {
		player.Score += domain.WinnerPoints
	}

	if err := e.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	if err := e.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	e.logger.Info("round judged",
		"roomID", roomID,
		"round", game.CurrentRound,
		"winner", winning.PlayerID,
	)
	return game, nil
}

// AdvanceOrFinish moves the session to the next round, or concludes the game
// once the configured number of rounds have completed. Exactly one of the
// return values is non-nil on success. Callers scheduling this after a delay
// should treat ErrRoomNotFound/ErrGameNotFound as a no-op: the room may have
// emptied while the timer ran.
func (e *Engine) AdvanceOrFinish(ctx context.Context, roomID string) (*domain.Game, *domain.GameResult, error) {
	unlock := e.locks.Lock(roomID)
	defer unlock()

	game, err := e.store.GetGame(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	room, err := e.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	// Room player scores are authoritative; re-sync before deciding anything.
	game.SyncScores(room.Players)

	if game.CurrentRound >= room.Settings.MaxRounds {
		result, err := e.finish(ctx, room, game)
		return nil, result, err
	}

	game.AdvanceRound(e.pickRandom(room), e.deck.PickPrompt(), room.Settings.RoundTimer)
	if err := e.store.SaveGame(ctx, game); err != nil {
		return nil, nil, err
	}

	e.logger.Info("round advanced", "roomID", roomID, "round", game.CurrentRound, "picker", game.Picker)
	return game, nil, nil
}

// finish concludes the session: computes the result summary, returns the
// room to the waiting state with readiness reset and hands redealt for an
// immediate replay, and discards the session document.
func (e *Engine) finish(ctx context.Context, room *domain.Room, game *domain.Game) (*domain.GameResult, error) {
	result := game.FinalResult(room.Players)

	room.GameState = domain.RoomWaiting
	room.Winner = result.Winner
	for _, player := range room.Players {
		hand, err := e.deck.DrawHand(e.cfg.HandSize)
		if err != nil {
			return nil, err
		}
		player.ResetForReplay(hand)
	}

	if err := e.store.DeleteGame(ctx, room.ID); err != nil {
		return nil, err
	}
	if err := e.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	e.logger.Info("game finished", "roomID", room.ID, "winner", result.Winner)
	return result, nil
}
