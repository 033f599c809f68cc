package models

// GrammarReplacement is a suggested replacement for a match.
type GrammarReplacement struct {
	Value string `json:"value"`
}

// GrammarMatch is a single issue reported by the grammar engine.
type GrammarMatch struct {
	Message      string               `json:"message"`
	Offset       int                  `json:"offset"`
	Length       int                  `json:"length"`
	Replacements []GrammarReplacement `json:"replacements"`
}

// GrammarCorrection is the corrected text together with a description of each change.
type GrammarCorrection struct {
	Corrected string         `json:"corrected"`
	Changes   []string       `json:"changes"`
	Matches   []GrammarMatch `json:"matches"`
}
