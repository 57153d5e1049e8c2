// ABOUTME: Static French-to-English translation tables for advisory queries
// ABOUTME: Load-once configuration; phrase table is applied before token table
package translate

import "sort"

// phrasePair maps a multi-word French expression to its English equivalent.
type phrasePair struct {
	French  string
	English string
}

// expressions are applied before token translation so idioms are not
// fragmented. Sorted longest-first at init so more specific expressions win.
var expressions = []phrasePair{
	{"constituer un portefeuille", "build a portfolio"},
	{"gestion de patrimoine", "wealth management"},
	{"allocation d'actifs", "asset allocation"},
	{"profil de risque", "risk profile"},
	{"tolérance au risque", "risk tolerance"},
	{"horizon d'investissement", "investment horizon"},
	{"objectifs financiers", "financial objectives"},
	{"planification financière", "financial planning"},
	{"gestion des risques", "risk management"},
	{"diversification géographique", "geographic diversification"},
	{"répartition sectorielle", "sector allocation"},
	{"stratégie d'investissement", "investment strategy"},
	{"optimisation fiscale", "tax optimization"},
	{"préparation retraite", "retirement planning"},
	{"épargne retraite", "retirement savings"},
	{"minimiser les risques", "minimize risks"},
	{"maximiser les rendements", "maximize returns"},
	{"équilibrer risque et rendement", "balance risk and return"},
}

// financialTerms is the single-token French-to-English dictionary. Unknown
// tokens pass through untranslated.
var financialTerms = map[string]string{
	// Investment objectives
	"portefeuille":    "portfolio",
	"diversification": "diversification",
	"diversifié":      "diversified",
	"retraite":        "retirement",
	"épargne":         "savings",
	"investissement":  "investment",
	"placement":       "investment",
	"allocation":      "allocation",
	"répartition":     "allocation",

	// Risk management
	"risque":       "risk",
	"risques":      "risks",
	"minimiser":    "minimize",
	"réduire":      "reduce",
	"volatilité":   "volatility",
	"sécurité":     "security",
	"stabilité":    "stability",
	"prudent":      "conservative",
	"conservateur": "conservative",
	"prudence":     "conservative",
	"audacieux":    "aggressive",
	"agressif":     "aggressive",
	"équilibré":    "balanced",
	"modéré":       "moderate",

	// Asset types
	"actions":            "stocks",
	"obligations":        "bonds",
	"immobilier":         "real estate",
	"liquidité":          "liquidity",
	"cash":               "cash",
	"matières premières": "commodities",
	"or":                 "gold",

	// Strategies
	"croissance":     "growth",
	"rendement":      "yield",
	"revenu":         "income",
	"plus-value":     "capital gains",
	"patrimoine":     "wealth",
	"gestion":        "management",
	"stratégie":      "strategy",
	"planification":  "planning",

	// Client profiles
	"client":       "client",
	"investisseur": "investor",
	"objectif":     "objective",
	"horizon":      "horizon",
	"long terme":   "long term",
	"court terme":  "short term",
	"moyen terme":  "medium term",

	// Advisory context
	"conseil":        "advice",
	"recommandation": "recommendation",
	"analyse":        "analysis",
	"évaluation":     "assessment",
	"optimisation":   "optimization",
	"performance":    "performance",
}

// stopWords are French function words removed after translation.
var stopWords = map[string]bool{
	"le": true, "la": true, "les": true, "un": true, "une": true,
	"des": true, "du": true, "de": true, "pour": true, "avec": true,
	"sans": true, "dans": true, "sur": true, "en": true, "et": true,
	"ou": true, "à": true, "au": true, "aux": true,
}

// contextTerms pad short queries so the downstream similarity search is not
// starved of signal.
var contextTerms = []string{"portfolio", "wealth", "management", "strategy", "allocation"}

// minTokensBeforeFallback is the token count at or below which context terms
// are appended.
const minTokensBeforeFallback = 3

func init() {
	sort.SliceStable(expressions, func(i, j int) bool {
		return len(expressions[i].French) > len(expressions[j].French)
	})
}
