package domain

import "time"

// WinnerPoints is the fixed bonus awarded to a round winner
const WinnerPoints = 5

// Game is the active round-based contest for exactly one playing room
type Game struct {
	RoomID       string         `json:"roomId"`
	CurrentRound int            `json:"currentRound"`
	Picker       string         `json:"currentPicker"`
	PromptCard   PromptCard     `json:"promptCard"`
	Submissions  []Submission   `json:"submissions"`
	RoundState   Phase          `json:"roundState"`
	TimeLeft     int            `json:"timeLeft"` // advisory display countdown, not enforced
	Scores       map[string]int `json:"scores"`
	History      []RoundResult  `json:"gameHistory"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// NewGame creates a session at round 1 in the submitting phase. The score
// table is seeded from each player's current score so score continuity
// survives re-entry.
func NewGame(roomID, pickerID string, prompt PromptCard, players []*Player, timerSeconds int) *Game {
	scores := make(map[string]int, len(players))
	for _, p := range players {
		scores[p.ID] = p.Score
	}

	return &Game{
		RoomID:       roomID,
		CurrentRound: 1,
		Picker:       pickerID,
		PromptCard:   prompt,
		Submissions:  make([]Submission, 0),
		RoundState:   PhaseSubmitting,
		TimeLeft:     timerSeconds,
		Scores:       scores,
		History:      make([]RoundResult, 0),
		CreatedAt:    time.Now(),
	}
}

// HasSubmitted reports whether the player already has a submission this round
func (g *Game) HasSubmitted(playerID string) bool {
	for _, s := range g.Submissions {
		if s.PlayerID == playerID {
			return true
		}
	}
	return false
}

// Submit validates and appends one player's answer for the current round.
// All validation happens before any state is mutated.
func (g *Game) Submit(playerID string, cards []AnswerCard) error {
	if g.RoundState != PhaseSubmitting {
		return ErrWrongPhase
	}
	if playerID == g.Picker {
		return ErrPickerCannotSubmit
	}
	if g.HasSubmitted(playerID) {
		return ErrDuplicateSubmission
	}
	if len(cards) != g.PromptCard.Blanks {
		return ErrInvalidSubmissionSize
	}

	g.Submissions = append(g.Submissions, Submission{
		PlayerID:   playerID,
		Cards:      cards,
		IsRevealed: false,
	})
	return nil
}

// MaybeBeginJudging flips the phase to judging once every non-picker player
// has submitted. The count is taken fresh from the caller so two racing final
// submissions cannot flip the phase twice.
func (g *Game) MaybeBeginJudging(playerCount int) bool {
	if g.RoundState != PhaseSubmitting {
		return false
	}
	if len(g.Submissions) < playerCount-1 {
		return false
	}
	g.RoundState = PhaseJudging
	return true
}

// JudgePick awards the round to one submission, records the round in history
// and moves to the results phase. The winner's score table entry is bumped by
// WinnerPoints; the caller must apply the same bonus to the room player.
func (g *Game) JudgePick(pickerID string, submissionIndex int) (Submission, error) {
	if pickerID != g.Picker {
		return Submission{}, ErrNotPicker
	}
	if g.RoundState != PhaseJudging {
		return Submission{}, ErrWrongPhase
	}
	if submissionIndex < 0 || submissionIndex >= len(g.Submissions) {
		return Submission{}, ErrInvalidIndex
	}

	for i := range g.Submissions {
		g.Submissions[i].IsRevealed = true
	}

	winning := g.Submissions[submissionIndex]
	g.Scores[winning.PlayerID] += WinnerPoints

	g.History = append(g.History, RoundResult{
		Round:        g.CurrentRound,
		PromptCard:   g.PromptCard,
		Submissions:  g.Submissions,
		Winner:       winning.PlayerID,
		WinningCards: winning.Cards,
	})
	g.RoundState = PhaseResults

	return winning, nil
}

// SyncScores re-reads the authoritative scores from the room players
func (g *Game) SyncScores(players []*Player) {
	for _, p := range players {
		g.Scores[p.ID] = p.Score
	}
}

// AdvanceRound resets the session for the next round with a fresh picker and
// prompt. Scores are never reset between rounds.
func (g *Game) AdvanceRound(pickerID string, prompt PromptCard, timerSeconds int) {
	g.CurrentRound++
	g.Picker = pickerID
	g.PromptCard = prompt
	g.Submissions = make([]Submission, 0)
	g.RoundState = PhaseSubmitting
	g.TimeLeft = timerSeconds
}

// PlayerScore is one player's final line in the game result
type PlayerScore struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// GameResult is the summary produced when a session concludes
type GameResult struct {
	FinalScores []PlayerScore  `json:"finalScores"`
	Scores      map[string]int `json:"scores"`
	Winner      string         `json:"winner"`
	WinnerName  string         `json:"winnerName"`
	GameHistory []RoundResult  `json:"gameHistory"`
}

// FinalResult computes the end-of-game summary from the session's
// authoritative score table. Players must be given in join order: on a tie
// the earliest joined player wins.
func (g *Game) FinalResult(players []*Player) *GameResult {
	result := &GameResult{
		FinalScores: make([]PlayerScore, 0, len(players)),
		Scores:      make(map[string]int, len(players)),
		GameHistory: g.History,
	}

	best := -1
	for _, p := range players {
		score := g.Scores[p.ID]
		result.FinalScores = append(result.FinalScores, PlayerScore{
			PlayerID: p.ID,
			Name:     p.Name,
			Score:    score,
		})
		result.Scores[p.ID] = score

		if score > best {
			best = score
			result.Winner = p.ID
			result.WinnerName = p.Name
		}
	}

	return result
}
