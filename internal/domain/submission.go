package domain

// Submission is one non-picker player's proposed answer for the current round
type Submission struct {
	PlayerID   string       `json:"playerId"`
	Cards      []AnswerCard `json:"cards"`
	IsRevealed bool         `json:"isRevealed"`
}

// RoundResult records one completed round in the session history
type RoundResult struct {
	Round        int          `json:"round"`
	PromptCard   PromptCard   `json:"promptCard"`
	Submissions  []Submission `json:"submissions"`
	Winner       string       `json:"winner"`
	WinningCards []AnswerCard `json:"winningCards"`
}
