package entity

// LearningModule is a short investing lesson that awards XP once its quiz is
// answered correctly.
type LearningModule struct {
	ID          string
	Title       string
	Emoji       string
	Description string
	Content     []string
	Quiz        Quiz
	XPReward    float64
}

var moduleCatalogue = []*LearningModule{
	{
		ID:          "m1",
		Title:       "Investing 101",
		Emoji:       "🌱",
		Description: "Why should you care about investing?",
		XPReward:    100,
		Content: []string{
			"Imagine planting a seed. You water it, and over time, it grows into a huge tree. Investing is just like that, but with money!",
			"When you keep money in a piggy bank, it stays the same. But inflation means that money buys less in the future.",
			"Investing puts your money to work. You buy assets that you hope will become more valuable over time.",
			"Key Concept: Compound Interest. It's interest on top of interest.",
		},
		Quiz: Quiz{
			Question:      "What happens to money kept in a piggy bank over a long time due to inflation?",
			Options:       []string{"It grows in value", "It loses buying power", "It doubles", "It turns into gold"},
			CorrectAnswer: 1,
		},
	},
	{
		ID:          "m2",
		Title:       "Stocks vs. Bonds",
		Emoji:       "⚖️",
		Description: "Understanding the main building blocks.",
		XPReward:    100,
		Content: []string{
			"Stocks mean you own a tiny slice of a company. If the company does well, the stock price goes up. High risk, high reward.",
			"Bonds are like loaning money to a company or government. They pay you back with interest. Safer than stocks, but usually earning less.",
		},
		Quiz: Quiz{
			Question:      "If you buy a stock, what are you actually buying?",
			Options:       []string{"A loan to the bank", "A guaranteed profit", "A tiny piece of ownership in a company", "Insurance"},
			CorrectAnswer: 2,
		},
	},
	{
		ID:          "m3",
		Title:       "The Rollercoaster",
		Emoji:       "🎢",
		Description: "Why do markets go up and down?",
		XPReward:    150,
		Content: []string{
			"The stock market goes up and down every day. This is called volatility.",
			"Prices change because of supply and demand, and news moves both.",
			"Don't panic. Investing is a marathon, not a sprint.",
		},
		Quiz: Quiz{
			Question:      "What should you do if the market drops one day?",
			Options:       []string{"Panic and sell everything", "Buy a boat", "Stay calm and think long-term", "Hide under the bed"},
			CorrectAnswer: 2,
		},
	},
}

// LearningModules returns the static module catalogue.
func LearningModules() []*LearningModule {
	return moduleCatalogue
}

// LearningModuleByID returns the catalogue module with the given ID, or nil.
func LearningModuleByID(id string) *LearningModule {
	for _, m := range moduleCatalogue {
		if m.ID == id {
			return m
		}
	}
	return nil
}
