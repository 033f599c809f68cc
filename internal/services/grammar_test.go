package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/sbilibin2017/gw-translator/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(offset, length int, msg string, values ...string) models.GrammarMatch {
	m := models.GrammarMatch{Message: msg, Offset: offset, Length: length}
	for _, v := range values {
		m.Replacements = append(m.Replacements, models.GrammarReplacement{Value: v})
	}
	return m
}

func TestGrammarService_Correct(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		matches     []models.GrammarMatch
		wantText    string
		wantChanges []string
	}{
		{
			name:        "no issues",
			text:        "All good.",
			matches:     []models.GrammarMatch{},
			wantText:    "All good.",
			wantChanges: []string{},
		},
		{
			name: "applies in offset order",
			text: "I has a apple",
			matches: []models.GrammarMatch{
				match(6, 1, "Use an", "an"),
				match(2, 3, "Agreement", "have", "had"),
			},
			wantText: "I have an apple",
			wantChanges: []string{
				`Changed "has" to "have" (Agreement)`,
				`Changed "a" to "an" (Use an)`,
			},
		},
		{
			name: "overlapping match skipped",
			text: "teh cat",
			matches: []models.GrammarMatch{
				match(0, 3, "Spelling", "the"),
				match(1, 4, "Overlap", "zzz"),
			},
			wantText:    "the cat",
			wantChanges: []string{`Changed "teh" to "the" (Spelling)`},
		},
		{
			name:        "no replacement keeps text",
			text:        "Foo bar",
			matches:     []models.GrammarMatch{match(0, 3, "Unknown word")},
			wantText:    "Foo bar",
			wantChanges: []string{`Issue with "Foo": Unknown word (no automatic correction available)`},
		},
		{
			name:        "same replacement is a suggestion",
			text:        "Foo bar",
			matches:     []models.GrammarMatch{match(4, 3, "Style", "bar")},
			wantText:    "Foo bar",
			wantChanges: []string{`Suggestion for "bar": Style`},
		},
		{
			name:        "out of range match skipped",
			text:        "short",
			matches:     []models.GrammarMatch{match(3, 10, "Bad offset", "x")},
			wantText:    "short",
			wantChanges: []string{},
		},
		{
			name:        "offsets count characters",
			text:        "café es bueno",
			matches:     []models.GrammarMatch{match(5, 2, "Verb", "está")},
			wantText:    "café está bueno",
			wantChanges: []string{`Changed "es" to "está" (Verb)`},
		},
		{
			name:        "offsets count utf-16 units",
			text:        "🙂 teh cat",
			matches:     []models.GrammarMatch{match(3, 3, "Spelling", "the")},
			wantText:    "🙂 the cat",
			wantChanges: []string{`Changed "teh" to "the" (Spelling)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checker := services.NewMockGrammarChecker(ctrl)
			svc := services.NewGrammarService(checker)

			checker.EXPECT().Check(gomock.Any(), tt.text, "en-US").Return(tt.matches, nil)

			got, err := svc.Correct(context.Background(), tt.text, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.Corrected)
			assert.Equal(t, tt.wantChanges, got.Changes)
			assert.Equal(t, tt.matches, got.Matches)
		})
	}
}

func TestGrammarService_Correct_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := services.NewMockGrammarChecker(ctrl)
	svc := services.NewGrammarService(checker)

	_, err := svc.Correct(context.Background(), "  ", "en-US")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	checker.EXPECT().Check(gomock.Any(), "text", "de-DE").Return(nil, errors.New("timeout"))
	_, err = svc.Correct(context.Background(), "text", "de-DE")
	assert.ErrorIs(t, err, services.ErrUpstream)
}
