package app

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"fancards/internal/deck"
	"fancards/internal/domain"
	"fancards/internal/ledger"
	"fancards/internal/store"
)

// newTestTable wires a registry and engine over a shared store, deck and lock
// table, the way main does.
func newTestTable(cfg Config, seed int64) (*Registry, *Engine, store.Store) {
	st := store.NewMemory()
	dk := deck.New(rand.New(rand.NewSource(seed)))
	locks := NewRoomLocks()
	reg := NewRegistry(st, dk, ledger.NewMemory(testLogger()), locks, cfg, testLogger())
	eng := NewEngine(st, dk, locks, cfg, rand.New(rand.NewSource(seed)), testLogger())
	return reg, eng, st
}

// readyRoom creates a room with two ready players and returns it with the
// two player ids in join order.
func readyRoom(t *testing.T, reg *Registry, settings domain.RoomSettings) (string, []string) {
	t.Helper()
	ctx := context.Background()

	room, creator, err := reg.CreateRoom(ctx, "Friday Night", settings, "Ada")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	_, ben, err := reg.JoinRoom(ctx, room.ID, "Ben")
	if err != nil {
		t.Fatalf("join room: %v", err)
	}
	if _, err := reg.ToggleReady(ctx, room.ID, creator.ID, true); err != nil {
		t.Fatalf("ready creator: %v", err)
	}
	if _, err := reg.ToggleReady(ctx, room.ID, ben.ID, true); err != nil {
		t.Fatalf("ready joiner: %v", err)
	}
	return room.ID, []string{creator.ID, ben.ID}
}

// submitFromHand submits the right number of cards from the player's stored
// hand for the current prompt.
func submitFromHand(t *testing.T, eng *Engine, st store.Store, roomID, playerID string) (*domain.Game, bool) {
	t.Helper()
	ctx := context.Background()

	game, err := st.GetGame(ctx, roomID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	room, err := st.GetRoom(ctx, roomID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	player, ok := room.Player(playerID)
	if !ok {
		t.Fatalf("player %s not in room", playerID)
	}

	cards := player.Hand[:game.PromptCard.Blanks]
	updated, judging, err := eng.Submit(ctx, roomID, playerID, cards)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return updated, judging
}

// otherPlayer returns the id in ids that is not the picker
func otherPlayer(ids []string, picker string) string {
	for _, id := range ids {
		if id != picker {
			return id
		}
	}
	return ""
}

func TestStartPreconditions(t *testing.T) {
	ctx := context.Background()
	reg, eng, _ := newTestTable(testConfig(), 42)

	room, creator, err := reg.CreateRoom(ctx, "Friday Night", domain.RoomSettings{}, "Ada")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	// Below minimum player count.
	if _, err := eng.Start(ctx, room.ID); !errors.Is(err, domain.ErrNotEnoughPlayers) {
		t.Fatalf("solo start error = %v, want ErrNotEnoughPlayers", err)
	}

	_, ben, err := reg.JoinRoom(ctx, room.ID, "Ben")
	if err != nil {
		t.Fatalf("join room: %v", err)
	}

	// Enough players but not everyone ready.
	if _, err := eng.Start(ctx, room.ID); !errors.Is(err, domain.ErrPlayersNotReady) {
		t.Fatalf("unready start error = %v, want ErrPlayersNotReady", err)
	}

	reg.ToggleReady(ctx, room.ID, creator.ID, true)
	reg.ToggleReady(ctx, room.ID, ben.ID, true)

	game, err := eng.Start(ctx, room.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if game.CurrentRound != 1 || game.RoundState != domain.PhaseSubmitting {
		t.Fatalf("game = round %d phase %s, want round 1 submitting", game.CurrentRound, game.RoundState)
	}
	if game.Picker != creator.ID && game.Picker != ben.ID {
		t.Fatalf("picker %s is not a room player", game.Picker)
	}

	// Starting again while playing is rejected.
	if _, err := eng.Start(ctx, room.ID); !errors.Is(err, domain.ErrGameInProgress) {
		t.Fatalf("double start error = %v, want ErrGameInProgress", err)
	}
}

func TestStartMissingRoom(t *testing.T) {
	_, eng, _ := newTestTable(testConfig(), 42)

	if _, err := eng.Start(context.Background(), "ghost"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("error = %v, want ErrRoomNotFound", err)
	}
}

func TestSubmitConsumesHandAndFlipsJudging(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	reg, eng, st := newTestTable(cfg, 42)

	roomID, ids := readyRoom(t, reg, domain.RoomSettings{})
	game, err := eng.Start(ctx, roomID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	submitter := otherPlayer(ids, game.Picker)
	updated, judging := submitFromHand(t, eng, st, roomID, submitter)

	// With two players the lone non-picker submission completes the round.
	if !judging {
		t.Fatalf("final submission did not flip to judging")
	}
	if updated.RoundState != domain.PhaseJudging {
		t.Fatalf("phase = %s, want judging", updated.RoundState)
	}

	room, err := st.GetRoom(ctx, roomID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	player, _ := room.Player(submitter)
	if len(player.Hand) != cfg.HandSize-game.PromptCard.Blanks {
		t.Fatalf("hand = %d cards, want %d consumed", len(player.Hand), game.PromptCard.Blanks)
	}
}

func TestSubmitByPickerRejected(t *testing.T) {
	ctx := context.Background()
	reg, eng, st := newTestTable(testConfig(), 42)

	roomID, _ := readyRoom(t, reg, domain.RoomSettings{})
	game, err := eng.Start(ctx, roomID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	room, _ := st.GetRoom(ctx, roomID)
	picker, _ := room.Player(game.Picker)
	if _, _, err := eng.Submit(ctx, roomID, game.Picker, picker.Hand[:game.PromptCard.Blanks]); !errors.Is(err, domain.ErrPickerCannotSubmit) {
		t.Fatalf("picker submit error = %v, want ErrPickerCannotSubmit", err)
	}
}

func TestSubmitByStrangerRejected(t *testing.T) {
	ctx := context.Background()
	reg, eng, _ := newTestTable(testConfig(), 42)

	roomID, _ := readyRoom(t, reg, domain.RoomSettings{})
	if _, err := eng.Start(ctx, roomID); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, _, err := eng.Submit(ctx, roomID, "ghost", nil); !errors.Is(err, domain.ErrPlayerNotInRoom) {
		t.Fatalf("stranger submit error = %v, want ErrPlayerNotInRoom", err)
	}
}

func TestJudgePickUpdatesBothScoreViews(t *testing.T) {
	ctx := context.Background()
	reg, eng, st := newTestTable(testConfig(), 42)

	roomID, ids := readyRoom(t, reg, domain.RoomSettings{})
	game, err := eng.Start(ctx, roomID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	submitter := otherPlayer(ids, game.Picker)
	submitFromHand(t, eng, st, roomID, submitter)

	judged, err := eng.JudgePick(ctx, roomID, game.Picker, 0)
	if err != nil {
		t.Fatalf("judge pick: %v", err)
	}
	if judged.Scores[submitter] != domain.WinnerPoints {
		t.Fatalf("session score = %d, want %d", judged.Scores[submitter], domain.WinnerPoints)
	}

	room, err := st.GetRoom(ctx, roomID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	player, _ := room.Player(submitter)
	if player.Score != domain.WinnerPoints {
		t.Fatalf("room score = %d, want %d", player.Score, domain.WinnerPoints)
	}
}

func TestAdvanceMovesToNextRound(t *testing.T) {
	ctx := context.Background()
	reg, eng, st := newTestTable(testConfig(), 42)

	roomID, ids := readyRoom(t, reg, domain.RoomSettings{MaxRounds: 3})
	game, err := eng.Start(ctx, roomID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	submitter := otherPlayer(ids, game.Picker)
	submitFromHand(t, eng, st, roomID, submitter)
	if _, err := eng.JudgePick(ctx, roomID, game.Picker, 0); err != nil {
		t.Fatalf("judge pick: %v", err)
	}

	next, result, err := eng.AdvanceOrFinish(ctx, roomID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if result != nil {
		t.Fatalf("finished after round 1 of 3")
	}
	if next.CurrentRound != 2 {
		t.Fatalf("round = %d, want 2", next.CurrentRound)
	}
	if next.RoundState != domain.PhaseSubmitting {
		t.Fatalf("phase = %s, want submitting", next.RoundState)
	}
	if len(next.Submissions) != 0 {
		t.Fatalf("submissions carried into next round")
	}
	if next.Scores[submitter] != domain.WinnerPoints {
		t.Fatalf("scores reset between rounds")
	}
}

func TestFullGameRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	reg, eng, st := newTestTable(cfg, 7)

	roomID, ids := readyRoom(t, reg, domain.RoomSettings{MaxRounds: 1})
	game, err := eng.Start(ctx, roomID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	submitter := otherPlayer(ids, game.Picker)
	submitFromHand(t, eng, st, roomID, submitter)
	if _, err := eng.JudgePick(ctx, roomID, game.Picker, 0); err != nil {
		t.Fatalf("judge pick: %v", err)
	}

	next, result, err := eng.AdvanceOrFinish(ctx, roomID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if next != nil {
		t.Fatalf("expected finish after the only round")
	}
	if result == nil {
		t.Fatalf("no result on finish")
	}
	if result.Winner != submitter {
		t.Fatalf("winner = %s, want %s", result.Winner, submitter)
	}
	if result.Scores[submitter] != domain.WinnerPoints {
		t.Fatalf("final score = %d, want %d", result.Scores[submitter], domain.WinnerPoints)
	}
	if len(result.GameHistory) != 1 {
		t.Fatalf("history = %d rounds, want 1", len(result.GameHistory))
	}

	// The room returns to the lobby ready for a replay.
	room, err := st.GetRoom(ctx, roomID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if room.GameState != domain.RoomWaiting {
		t.Fatalf("room state = %s, want waiting", room.GameState)
	}
	if room.Winner != submitter {
		t.Fatalf("room winner = %s, want %s", room.Winner, submitter)
	}
	for _, p := range room.Players {
		if p.IsReady {
			t.Fatalf("player %s still ready after finish", p.ID)
		}
		if len(p.Hand) != cfg.HandSize {
			t.Fatalf("player %s hand = %d cards, want fresh %d", p.ID, len(p.Hand), cfg.HandSize)
		}
	}
	// The winner's score survives on the room player for the next game.
	winner, _ := room.Player(submitter)
	if winner.Score != domain.WinnerPoints {
		t.Fatalf("winner room score = %d, want %d", winner.Score, domain.WinnerPoints)
	}

	// The session document is gone.
	if _, err := st.GetGame(ctx, roomID); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("game still stored after finish: %v", err)
	}
}

func TestAdvanceAfterRoomGone(t *testing.T) {
	_, eng, _ := newTestTable(testConfig(), 42)

	if _, _, err := eng.AdvanceOrFinish(context.Background(), "ghost"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("error = %v, want ErrGameNotFound", err)
	}
}

func TestThreePlayerJudgingFlipsExactlyOnce(t *testing.T) {
	ctx := context.Background()
	reg, eng, st := newTestTable(testConfig(), 42)

	room, creator, err := reg.CreateRoom(ctx, "Friday Night", domain.RoomSettings{}, "Ada")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	_, ben, _ := reg.JoinRoom(ctx, room.ID, "Ben")
	_, cleo, _ := reg.JoinRoom(ctx, room.ID, "Cleo")
	for _, id := range []string{creator.ID, ben.ID, cleo.ID} {
		if _, err := reg.ToggleReady(ctx, room.ID, id, true); err != nil {
			t.Fatalf("ready %s: %v", id, err)
		}
	}

	game, err := eng.Start(ctx, room.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	flips := 0
	for _, id := range []string{creator.ID, ben.ID, cleo.ID} {
		if id == game.Picker {
			continue
		}
		_, judging := submitFromHand(t, eng, st, room.ID, id)
		if judging {
			flips++
		}
	}

	if flips != 1 {
		t.Fatalf("judging flip observed %d times, want exactly once", flips)
	}
}
