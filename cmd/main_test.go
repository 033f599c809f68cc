package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS",
	"JWT_SECRET_KEY", "JWT_EXP_SECOND", "JWT_SECURE_COOKIE",
	"TRANSLATE_URL", "TRANSLATE_API_KEY", "TRANSLATE_TIMEOUT_SECOND",
	"LANGUAGETOOL_URL", "LANGUAGETOOL_TIMEOUT_SECOND",
	"TESSERACT_PATH", "TESSERACT_LANG", "OCR_TIMEOUT_SECOND", "ESPEAK_PATH", "TTS_TIMEOUT_SECOND",
	"UPLOAD_DIR", "AUDIO_DIR", "MAX_UPLOAD_BYTES", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// resetEnv blanks the variables read by parseConfig; empty values fall back to defaults.
func resetEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 86400, cfg.JWTExpSecond)
	assert.False(t, cfg.JWTSecureCookie)
	assert.Equal(t, "http://localhost:5000/translate", cfg.TranslateURL)
	assert.Equal(t, 30, cfg.TranslateTimeoutSecond)
	assert.Equal(t, int64(16<<20), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")
	t.Setenv("TRANSLATE_URL", "http://libre:5000/translate")
	t.Setenv("TRANSLATE_API_KEY", "key")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 300, cfg.JWTExpSecond)
	assert.Equal(t, "http://libre:5000/translate", cfg.TranslateURL)
	assert.Equal(t, "key", cfg.TranslateAPIKey)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv(t)
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port string) (string, int) {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	return host, mapped.Int()
}

// newTranslateStub answers every request like a LibreTranslate server translating to French.
func newTranslateStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Q      string `json:"q"`
			Source string `json:"source"`
			Target string `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"bad body"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"translatedText":"bonjour","detectedLanguage":{"language":"en","confidence":90}}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

func postJSON(t *testing.T, client *http.Client, url string, body any, header http.Header) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRun_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pgHost, pgPort := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}, "5432")
	redisHost, redisPort := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}, "6379")
	stub := newTranslateStub(t)

	cfg := config{
		AppHost: "127.0.0.1", AppPort: freePort(t), LogLevel: "debug",
		PGHost: pgHost, PGPort: pgPort, PGUser: "user", PGPassword: "password", PGDB: "testdb",
		PGMaxOpenConns: 5, PGMaxIdleConns: 2,
		RedisHost: redisHost, RedisPort: redisPort, RedisPoolSize: 10, RedisMinIdleConns: 2,
		JWTSecretKey: "testsecret", JWTExpSecond: 60,
		TranslateURL: stub.URL, TranslateTimeoutSecond: 5,
		LanguageToolURL: stub.URL, LanguageToolTimeoutSecond: 5,
		TesseractPath: "tesseract", OCRTimeoutSecond: 5,
		ESpeakPath: "espeak-ng", TTSTimeoutSecond: 5,
		UploadDir: t.TempDir(), AudioDir: t.TempDir(), MaxUploadBytes: 1 << 20,
		CORSAllowedOrigins: []string{"*"}, RateLimitRPS: 100, RateLimitBurst: 100,
	}
	base := "http://" + net.JoinHostPort(cfg.AppHost, cfg.AppPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	require.Eventually(t, func() bool {
		resp, err := client.Get(base + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 200*time.Millisecond)

	creds := map[string]string{"username": "alice", "password": "pw1"}
	assert.Equal(t, http.StatusCreated, postJSON(t, client, base+"/register", creds, nil).StatusCode)
	assert.Equal(t, http.StatusConflict, postJSON(t, client, base+"/register", creds, nil).StatusCode)

	resp := postJSON(t, client, base+"/login", creds, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	resp = postJSON(t, client, base+"/translate", map[string]string{"source": "auto", "target": "fr", "text": "hello"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tr struct {
		Translated     string `json:"translated"`
		HistoryID      int64  `json:"history_id"`
		DetectedSource string `json:"detected_source"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tr))
	assert.Equal(t, "bonjour", tr.Translated)
	assert.Equal(t, "en", tr.DetectedSource)
	assert.Positive(t, tr.HistoryID)

	resp = postJSON(t, client, base+"/rate", map[string]any{"history_id": tr.HistoryID, "rating": 5}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	histResp, err := client.Get(base + "/history")
	require.NoError(t, err)
	defer histResp.Body.Close()
	var history []map[string]any
	require.NoError(t, json.NewDecoder(histResp.Body).Decode(&history))
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0]["message"])
	assert.Equal(t, "en", history[0]["source_lang"])
	assert.Equal(t, float64(5), history[0]["rating"])

	logoutResp, err := client.Get(base + "/logout")
	require.NoError(t, err)
	logoutResp.Body.Close()

	// The token from before the logout no longer opens a session.
	bearer := http.Header{"Authorization": []string{"Bearer " + login.Token}}
	resp = postJSON(t, &http.Client{Timeout: 10 * time.Second}, base+"/translate", map[string]string{"target": "fr", "text": "hi"}, bearer)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}
