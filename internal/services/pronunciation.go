package services

import (
	"math"
	"strings"
)

// PronunciationService scores how close a spoken transcript is to the expected phrase.
type PronunciationService struct{}

func NewPronunciationService() *PronunciationService {
	return &PronunciationService{}
}

// Analyze returns the score of actual against expected.
func (s *PronunciationService) Analyze(expected, actual string) float64 {
	return ScorePronunciation(expected, actual)
}

// ScorePronunciation compares the lower-cased strings character by character up
// to the shorter length and returns the share of matching positions relative to
// the expected length as a percentage rounded to two decimals.
func ScorePronunciation(expected, actual string) float64 {
	e := []rune(strings.ToLower(expected))
	a := []rune(strings.ToLower(actual))

	matches := 0
	for i := 0; i < len(e) && i < len(a); i++ {
		if e[i] == a[i] {
			matches++
		}
	}

	score := float64(matches) / float64(max(len(e), 1)) * 100
	return math.Round(score*100) / 100
}
