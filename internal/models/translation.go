package models

// Tone hints accepted by the translation gateway.
const (
	ContextDefault  = "default"
	ContextFormal   = "formal"
	ContextInformal = "informal"
)

// AutoDetect asks the engine to detect the source language.
const AutoDetect = "auto"

// Translation is what the translation engine returns.
type Translation struct {
	Text             string // Translated text
	DetectedLanguage string // Detected source language, empty when not reported
}

// TranslationResult is the outcome of one translate call.
type TranslationResult struct {
	Translated     string // Translation or error text
	HistoryID      int64  // Id of the recorded history entry
	DetectedSource string // Resolved source language
	Failed         bool   // True when the engine call failed
}
