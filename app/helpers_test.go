package app

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/store"
)

const (
	testEmail    = "ada@example.com"
	testPassword = "secret"
	testToken    = "session-ada"
)

// newTestEnv returns an env backed by a temporary store and default config
// pointed at apiURL.
func newTestEnv(t *testing.T, apiURL string) *env {
	t.Helper()

	cfg := config.Default()
	if apiURL != "" {
		cfg.Notes.APIURL = apiURL
	}

	db, err := store.NewClient(filepath.Join(t.TempDir(), "notehub.db"))
	require.NoError(t, err)

	e := &env{cfg: cfg, db: db, log: io.NopCloser(strings.NewReader(""))}

	t.Cleanup(func() { _ = e.Close() })

	return e
}

// runAction runs fn as a command with the given flags and arguments.
func runAction(
	t *testing.T,
	e *env,
	fn func(*cli.Context, *env) error,
	flags []cli.Flag,
	args ...string,
) error {
	t.Helper()

	a := &cli.App{
		Name:      "notehub",
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Commands: []*cli.Command{
			{
				Name:  "cmd",
				Flags: flags,
				Action: func(ctx *cli.Context) error {
					return fn(ctx, e)
				},
			},
		},
	}

	return a.Run(append([]string{"notehub", "cmd"}, args...))
}

// captureStdout redirects config.Stdout for the rest of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	orig := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() { config.Stdout = orig })

	return &buf
}

// newNotesAPI serves a minimal notes API with one account and the given
// notes.
func newNotesAPI(t *testing.T, notes ...gin.H) string {
	t.Helper()

	gin.SetMode(gin.TestMode)

	if notes == nil {
		notes = []gin.H{}
	}

	r := gin.New()
	api := r.Group("/api")

	api.POST("/users/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		if err := c.ShouldBindJSON(&req); err != nil ||
			req.Email != testEmail || req.Password != testPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": testToken,
			"user":  gin.H{"_id": "u1", "name": "ada", "email": testEmail},
		})
	})

	api.GET("/notes", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+testToken {
			c.String(http.StatusUnauthorized, "Token is not valid")
			return
		}

		c.JSON(http.StatusOK, notes)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv.URL + "/api"
}

// waitRecorder is a notifier that records the order of calls.
type waitRecorder struct {
	calls []string
	mu    sync.Mutex
}

func (w *waitRecorder) record(call string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls = append(w.calls, call)
}

func (w *waitRecorder) PlayTone() { w.record("tone") }

func (w *waitRecorder) Notify(msg string) { w.record("notify: " + msg) }

func (w *waitRecorder) Wait() { w.record("wait") }
