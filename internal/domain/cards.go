package domain

// CardCategory groups catalog entries by theme
type CardCategory string

const (
	CategoryFootball CardCategory = "football"
	CategorySports   CardCategory = "sports"
	CategoryGeneral  CardCategory = "general"
)

// Rarity is the collectible tier of an answer card
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// PromptCard is a fill-in-the-blank prompt. Catalog entries are immutable
// after load; gameplay never mutates them.
type PromptCard struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Blanks   int          `json:"blanks"`
	Category CardCategory `json:"category"`
}

// AnswerCard is a playable answer held in a player's hand
type AnswerCard struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Category CardCategory `json:"category"`
	Rarity   Rarity       `json:"rarity"`
}

// ActionCard is a special-effect card. Exposed through the catalog only;
// effects are not part of the round protocol.
type ActionCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      string `json:"effect"`
	Category    string `json:"category"`
}
