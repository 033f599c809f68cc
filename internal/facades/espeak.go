package facades

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/metrics"
)

const engineTTS = "espeak-ng"

// ESpeakFacade synthesizes speech with the espeak-ng CLI.
type ESpeakFacade struct {
	path    string
	timeout time.Duration
}

func NewESpeakFacade(path string, timeout time.Duration) *ESpeakFacade {
	return &ESpeakFacade{path: path, timeout: timeout}
}

// Synthesize writes a WAV rendering of text in the voice for lang to outPath.
// The text is passed on stdin so it is never parsed as a flag.
func (f *ESpeakFacade) Synthesize(ctx context.Context, text, lang, outPath string) error {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path,
		"-v", lang,
		"-s", "160",
		"-w", outPath,
		"--stdin",
	)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		err = fmt.Errorf("espeak-ng: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	metrics.ObserveEngineCall(engineTTS, start, err)

	if err != nil {
		logger.FromContext(ctx).Errorw("speech engine failed", "lang", lang, "error", err)
		return err
	}
	return nil
}
