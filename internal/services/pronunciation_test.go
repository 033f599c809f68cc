package services_test

import (
	"testing"

	"github.com/sbilibin2017/gw-translator/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestScorePronunciation(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     float64
	}{
		{name: "identical", expected: "hello", actual: "hello", want: 100},
		{name: "case insensitive", expected: "Hello", actual: "hELLO", want: 100},
		{name: "one substitution", expected: "hello", actual: "hallo", want: 80},
		{name: "shorter actual", expected: "hello", actual: "he", want: 40},
		{name: "longer actual", expected: "he", actual: "hello", want: 100},
		{name: "empty expected", expected: "", actual: "abc", want: 0},
		{name: "both empty", expected: "", actual: "", want: 0},
		{name: "rounded to two decimals", expected: "abc", actual: "abx", want: 66.67},
		{name: "shifted by one", expected: "abc", actual: "xabc", want: 0},
		{name: "multibyte characters", expected: "héllo", actual: "héllo", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ScorePronunciation(tt.expected, tt.actual))
		})
	}
}

func TestPronunciationService_Analyze(t *testing.T) {
	svc := services.NewPronunciationService()
	assert.Equal(t, 80.0, svc.Analyze("hello", "hallo"))
}
