package deck

import "fancards/internal/domain"

var promptCards = []domain.PromptCard{
	// Football
	{ID: "q1", Text: "The real reason Messi left Barcelona was ___.", Blanks: 1, Category: domain.CategoryFootball},
	{ID: "q2", Text: "What Ronaldo does in his spare time: ___.", Blanks: 1, Category: domain.CategoryFootball},
	{ID: "q3", Text: "The secret to winning the World Cup: ___ and ___.", Blanks: 2, Category: domain.CategoryFootball},
	{ID: "q4", Text: "What really happens in the VAR room: ___.", Blanks: 1, Category: domain.CategoryFootball},
	{ID: "q5", Text: "Mourinho's next excuse will be: ___.", Blanks: 1, Category: domain.CategoryFootball},
	{ID: "q6", Text: "How to make Neymar stop diving: ___.", Blanks: 1, Category: domain.CategoryFootball},
	{ID: "q7", Text: "Pep Guardiola's tactics meeting consists of ___ and ___.", Blanks: 2, Category: domain.CategoryFootball},
	{ID: "q8", Text: "The most painful thing for an Arsenal fan: ___.", Blanks: 1, Category: domain.CategoryFootball},
	{ID: "q9", Text: "What Harry Kane dreams about every night: ___.", Blanks: 1, Category: domain.CategoryFootball},
	{ID: "q10", Text: "The referee's biggest fear during a match: ___.", Blanks: 1, Category: domain.CategoryFootball},

	// General sports
	{ID: "q11", Text: "The real reason athletes celebrate goals: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q12", Text: "What coaches really say during halftime: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q13", Text: "The worst thing about being a sports commentator: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q14", Text: "How to become a professional athlete: ___ and ___.", Blanks: 2, Category: domain.CategorySports},
	{ID: "q15", Text: "What fans really think during penalty shootouts: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q16", Text: "The secret ingredient in sports drinks: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q17", Text: "Why athletes retire early: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q18", Text: "The most embarrassing moment in sports history: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q19", Text: "What really motivates professional athletes: ___.", Blanks: 1, Category: domain.CategorySports},
	{ID: "q20", Text: "The ultimate sports superstition: ___ before every game.", Blanks: 1, Category: domain.CategorySports},
}

var answerCards = []domain.AnswerCard{
	// Football legends and personalities
	{ID: "a1", Text: "Messi's tax advisor", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},
	{ID: "a2", Text: "Ronaldo's skincare routine", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a3", Text: "Neymar's acting classes", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a4", Text: "A drunk referee", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a5", Text: "Pep's bald head tactics", Category: domain.CategoryFootball, Rarity: domain.RarityRare},

	// Football situations
	{ID: "a6", Text: "VAR officials watching Netflix", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a7", Text: "Mourinho parking the bus literally", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a8", Text: "Arsenal's trophy cabinet collecting dust", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},
	{ID: "a9", Text: "Liverpool fans singing You'll Never Walk Alone in the shower", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a10", Text: "Chelsea's revolving door of managers", Category: domain.CategoryFootball, Rarity: domain.RarityRare},

	// Player behaviors
	{ID: "a11", Text: "Zlatan's ego having its own agent", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},
	{ID: "a12", Text: "Mbappe's turtle celebration", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a13", Text: "Haaland's robot celebration malfunction", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a14", Text: "Klopp's teeth whitening routine", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a15", Text: "Benzema's Ballon d'Or acceptance speech", Category: domain.CategoryFootball, Rarity: domain.RarityRare},

	// General football madness
	{ID: "a16", Text: "A penalty that actually makes sense", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},
	{ID: "a17", Text: "Manchester United's defense", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},
	{ID: "a18", Text: "Barcelona's financial advisor", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a19", Text: "PSG's Champions League curse", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a20", Text: "Real Madrid's transfer budget", Category: domain.CategoryFootball, Rarity: domain.RarityRare},

	// Sports general
	{ID: "a21", Text: "Performance-enhancing energy drinks", Category: domain.CategorySports, Rarity: domain.RarityCommon},
	{ID: "a22", Text: "A coach having an existential crisis", Category: domain.CategorySports, Rarity: domain.RarityRare},
	{ID: "a23", Text: "Fans throwing objects at players", Category: domain.CategorySports, Rarity: domain.RarityCommon},
	{ID: "a24", Text: "Commentators running out of things to say", Category: domain.CategorySports, Rarity: domain.RarityCommon},
	{ID: "a25", Text: "Athletes thanking God for their salary", Category: domain.CategorySports, Rarity: domain.RarityRare},

	// Absurd sports situations
	{ID: "a26", Text: "Referees using Google Translate for decisions", Category: domain.CategorySports, Rarity: domain.RarityRare},
	{ID: "a27", Text: "Stadium hot dogs that cost more than tickets", Category: domain.CategorySports, Rarity: domain.RarityCommon},
	{ID: "a28", Text: "Sports commentators' secret drinking game", Category: domain.CategorySports, Rarity: domain.RarityLegendary},
	{ID: "a29", Text: "Athletes pretending to understand economics", Category: domain.CategorySports, Rarity: domain.RarityRare},
	{ID: "a30", Text: "Mascots having midlife crises", Category: domain.CategorySports, Rarity: domain.RarityCommon},

	// More football chaos
	{ID: "a31", Text: "Messi's growth hormone supplier", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},
	{ID: "a32", Text: "Ronaldo's Manchester United reunion tears", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a33", Text: "Kante's pocket containing the entire opposition", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a34", Text: "VAR taking longer than a Netflix episode", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a35", Text: "Grealish's calves insurance policy", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},

	// International football
	{ID: "a36", Text: "England's penalty curse", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},
	{ID: "a37", Text: "Germany's 7-1 flashbacks", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a38", Text: "Italy's tactical fouling masterclass", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a39", Text: "France's World Cup victory hangover", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a40", Text: "Spain's thousand passes to nowhere", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},

	// Modern football problems
	{ID: "a41", Text: "Social media transfer rumors", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a42", Text: "Oil money ruining football", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a43", Text: "Players' haircut costing more than your car", Category: domain.CategoryFootball, Rarity: domain.RarityCommon},
	{ID: "a44", Text: "Influencer footballers", Category: domain.CategoryFootball, Rarity: domain.RarityRare},
	{ID: "a45", Text: "FIFA's corruption scandals", Category: domain.CategoryFootball, Rarity: domain.RarityLegendary},

	// Random sports madness
	{ID: "a46", Text: "Athletes' post-game interview clichés", Category: domain.CategorySports, Rarity: domain.RarityCommon},
	{ID: "a47", Text: "Coaches throwing tactical tantrums", Category: domain.CategorySports, Rarity: domain.RarityCommon},
	{ID: "a48", Text: "Sports journalists making up transfer stories", Category: domain.CategorySports, Rarity: domain.RarityRare},
	{ID: "a49", Text: "Fans' delusional transfer expectations", Category: domain.CategorySports, Rarity: domain.RarityCommon},
	{ID: "a50", Text: "Victory celebrations gone horribly wrong", Category: domain.CategorySports, Rarity: domain.RarityRare},
}

var actionCards = []domain.ActionCard{
	{ID: "ac1", Name: "VAR Review", Description: "Force all players to resubmit their cards", Effect: "reset_submissions", Category: "chaos"},
	{ID: "ac2", Name: "Red Card", Description: "Skip one player's turn this round", Effect: "skip_player", Category: "game"},
	{ID: "ac3", Name: "Extra Time", Description: "Double the round timer", Effect: "double_timer", Category: "game"},
	{ID: "ac4", Name: "Hat Trick", Description: "Score 3 points instead of 1 if you win this round", Effect: "triple_points", Category: "scoring"},
	{ID: "ac5", Name: "Transfer Window", Description: "Swap hands with another player", Effect: "swap_hands", Category: "chaos"},
}
