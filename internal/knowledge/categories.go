// ABOUTME: Static topic and keyword dictionaries for the CFA course domain
// ABOUTME: Load-once configuration; declaration order is the category tie-break
package knowledge

// TopicCategory pairs a topic label with the keyword list that scores it.
type TopicCategory struct {
	Name     string
	Keywords []string
}

// TopicCategories are scored in declaration order; on equal scores the
// first-declared category wins.
var TopicCategories = []TopicCategory{
	{"Asset Allocation", []string{"asset allocation", "portfolio", "diversification", "strategic allocation", "tactical allocation"}},
	{"Risk Management", []string{"risk", "volatility", "downside", "var", "risk tolerance", "risk capacity"}},
	{"Investment Strategy", []string{"strategy", "investment", "approach", "methodology", "framework"}},
	{"Client Management", []string{"client", "advisor", "relationship", "communication", "objectives"}},
	{"Performance", []string{"performance", "return", "benchmark", "measurement", "evaluation"}},
	{"Tax Planning", []string{"tax", "taxation", "tax-efficient", "after-tax", "tax planning"}},
	{"Estate Planning", []string{"estate", "inheritance", "succession", "wealth transfer", "legacy"}},
	{"Alternative Investments", []string{"alternative", "hedge fund", "private equity", "real estate", "commodities"}},
}

// CategoryNames returns the category labels in declaration order.
func CategoryNames() []string {
	names := make([]string, len(TopicCategories))
	for i, c := range TopicCategories {
		names[i] = c.Name
	}
	return names
}

// MaxKeywordsPerSegment bounds the keyword set attached to one segment.
const MaxKeywordsPerSegment = 10

// FinancialTerms is the fixed retrieval vocabulary, scanned in declaration
// order so extraction is deterministic.
var FinancialTerms = []string{
	"portfolio", "diversification", "allocation", "risk", "return", "volatility",
	"equity", "bond", "asset", "investment", "strategy", "client", "advisor",
	"wealth", "management", "planning", "tax", "estate", "performance",
	"benchmark", "correlation", "sharpe", "alpha", "beta", "hedge",
}

// frenchTerms maps indexed English vocabulary to French equivalents, used to
// enrich segment keywords so the posting list serves bilingual lookups.
var frenchTerms = map[string]string{
	"portfolio":       "portefeuille",
	"allocation":      "allocation",
	"diversification": "diversification",
	"risk":            "risque",
	"wealth":          "patrimoine",
	"management":      "gestion",
	"investment":      "investissement",
	"strategy":        "stratégie",
	"planning":        "planification",
	"retirement":      "retraite",
	"savings":         "épargne",
	"conservative":    "prudent",
	"balanced":        "équilibré",
	"aggressive":      "audacieux",
	"moderate":        "modéré",
	"stocks":          "actions",
	"bonds":           "obligations",
	"equity":          "actions",
	"real estate":     "immobilier",
	"commodities":     "matières premières",
	"cash":            "liquidités",
	"growth":          "croissance",
	"income":          "revenus",
	"preservation":    "préservation",
	"stability":       "stabilité",
	"liquidity":       "liquidité",
	"volatility":      "volatilité",
	"correlation":     "corrélation",
	"optimization":    "optimisation",
	"performance":     "performance",
	"benchmark":       "référence",
	"yield":           "rendement",
	"return":          "rendement",
}

// frenchPhrases maps multi-word English expressions to French, checked before
// single terms so idioms are not fragmented.
var frenchPhrases = []struct {
	English string
	French  string
}{
	{"asset allocation", "allocation d'actifs"},
	{"risk management", "gestion des risques"},
	{"wealth management", "gestion de patrimoine"},
	{"investment strategy", "stratégie d'investissement"},
	{"portfolio construction", "construction de portefeuille"},
	{"retirement planning", "planification retraite"},
	{"risk tolerance", "tolérance au risque"},
	{"time horizon", "horizon temporel"},
	{"capital preservation", "préservation du capital"},
	{"income generation", "génération de revenus"},
}
