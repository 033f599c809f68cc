package facades

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for an engine binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "engine.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestTesseractFacade_ExtractText(t *testing.T) {
	bin := writeScript(t, `[ "$2" = "stdout" ] || exit 2
[ "$4" = "eng" ] || exit 3
printf "  Hello OCR\n\f"
`)
	f := NewTesseractFacade(bin, "eng", time.Second)

	text, err := f.ExtractText(context.Background(), "/tmp/image.png")
	require.NoError(t, err)
	assert.Equal(t, "Hello OCR", text)
}

func TestTesseractFacade_ExtractText_Failure(t *testing.T) {
	bin := writeScript(t, "echo 'cannot read image' >&2\nexit 1\n")
	f := NewTesseractFacade(bin, "", time.Second)

	_, err := f.ExtractText(context.Background(), "/tmp/image.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read image")
}

func TestTesseractFacade_ExtractText_MissingBinary(t *testing.T) {
	f := NewTesseractFacade(filepath.Join(t.TempDir(), "missing"), "", time.Second)
	_, err := f.ExtractText(context.Background(), "/tmp/image.png")
	assert.Error(t, err)
}

func TestTesseractFacade_ExtractText_Timeout(t *testing.T) {
	bin := writeScript(t, "exec sleep 5\n")
	f := NewTesseractFacade(bin, "", 100*time.Millisecond)

	start := time.Now()
	_, err := f.ExtractText(context.Background(), "/tmp/image.png")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestESpeakFacade_Synthesize(t *testing.T) {
	bin := writeScript(t, `out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-w" ]; then shift; out="$1"; fi
  shift
done
cat > "$out"
`)
	f := NewESpeakFacade(bin, time.Second)
	out := filepath.Join(t.TempDir(), "speech.wav")

	require.NoError(t, f.Synthesize(context.Background(), "-not a flag", "en", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "-not a flag", string(data))
}

func TestESpeakFacade_Synthesize_Failure(t *testing.T) {
	bin := writeScript(t, "echo 'unknown voice' >&2\nexit 1\n")
	f := NewESpeakFacade(bin, time.Second)

	err := f.Synthesize(context.Background(), "hello", "zz", filepath.Join(t.TempDir(), "x.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown voice")
}
