package services

//go:generate mockgen -source=grammar.go -destination=grammar_mock.go -package=services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/sbilibin2017/gw-translator/internal/models"
)

const defaultGrammarLanguage = "en-US"

// GrammarChecker reports grammar issues in a text.
type GrammarChecker interface {
	Check(ctx context.Context, text, language string) ([]models.GrammarMatch, error)
}

// GrammarService applies the checker's suggestions to a text.
type GrammarService struct {
	checker GrammarChecker
}

func NewGrammarService(checker GrammarChecker) *GrammarService {
	return &GrammarService{checker: checker}
}

// Correct checks text and applies the first replacement of each match.
func (s *GrammarService) Correct(ctx context.Context, text, language string) (*models.GrammarCorrection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if strings.TrimSpace(language) == "" {
		language = defaultGrammarLanguage
	}

	matches, err := s.checker.Check(ctx, text, language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	corrected, changes := applyCorrections(text, matches)
	return &models.GrammarCorrection{
		Corrected: corrected,
		Changes:   changes,
		Matches:   matches,
	}, nil
}

// applyCorrections walks the matches in offset order. LanguageTool offsets count
// UTF-16 code units, so the text is sliced in that encoding.
// Matches overlapping an already applied one, or reaching past the text, are skipped.
func applyCorrections(text string, matches []models.GrammarMatch) (string, []string) {
	units := utf16.Encode([]rune(text))
	sorted := make([]models.GrammarMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	var b strings.Builder
	changes := make([]string, 0, len(sorted))
	cursor := 0

	for _, m := range sorted {
		end := m.Offset + m.Length
		if m.Offset < cursor || m.Length < 0 || end > len(units) {
			continue
		}

		segment := string(utf16.Decode(units[m.Offset:end]))
		value := segment

		switch {
		case len(m.Replacements) == 0:
			changes = append(changes, fmt.Sprintf("Issue with %q: %s (no automatic correction available)", segment, m.Message))
		case m.Replacements[0].Value == segment:
			changes = append(changes, fmt.Sprintf("Suggestion for %q: %s", segment, m.Message))
		default:
			value = m.Replacements[0].Value
			changes = append(changes, fmt.Sprintf("Changed %q to %q (%s)", segment, value, m.Message))
		}

		b.WriteString(string(utf16.Decode(units[cursor:m.Offset])))
		b.WriteString(value)
		cursor = end
	}
	b.WriteString(string(utf16.Decode(units[cursor:])))

	return strings.TrimSpace(b.String()), changes
}
