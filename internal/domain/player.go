package domain

// Player represents a participant inside one room
type Player struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Avatar        string       `json:"avatar,omitempty"`
	Score         int          `json:"score"`
	IsReady       bool         `json:"isReady"`
	IsConnected   bool         `json:"isConnected"`
	Hand          []AnswerCard `json:"hand"`
	HasDeposited  bool         `json:"hasDeposited,omitempty"`
	DepositTxHash string       `json:"depositTxHash,omitempty"`
	WalletAddress string       `json:"walletAddress,omitempty"`
}

// NewPlayer creates a player with a fresh hand, zero score and not ready
func NewPlayer(id, name string, hand []AnswerCard) *Player {
	return &Player{
		ID:          id,
		Name:        name,
		Score:       0,
		IsReady:     false,
		IsConnected: true,
		Hand:        hand,
	}
}

// RemoveFromHand consumes the given card ids from the player's hand.
// Unknown ids are ignored; remaining order is preserved.
func (p *Player) RemoveFromHand(cardIDs []string) {
	if len(cardIDs) == 0 {
		return
	}

	remove := make(map[string]bool, len(cardIDs))
	for _, id := range cardIDs {
		remove[id] = true
	}

	kept := p.Hand[:0]
	for _, card := range p.Hand {
		if !remove[card.ID] {
			kept = append(kept, card)
		}
	}
	p.Hand = kept
}

// ResetForReplay prepares the player for a fresh game in the same room
func (p *Player) ResetForReplay(hand []AnswerCard) {
	p.IsReady = false
	p.Hand = hand
}

// Disconnect marks the player as disconnected without removing them,
// so rejoin state is preserved until the room empties
func (p *Player) Disconnect() {
	p.IsConnected = false
}

// Reconnect marks the player as connected again
func (p *Player) Reconnect() {
	p.IsConnected = true
}
