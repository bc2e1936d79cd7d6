package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetly/meetly/internal/common"
	"github.com/meetly/meetly/internal/config"
	"github.com/meetly/meetly/internal/cryptox"
	"github.com/meetly/meetly/internal/logging"
	"github.com/meetly/meetly/internal/models"
)

// ---- helpers ----

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		StorePath: filepath.Join(dir, "usuarios.csv"),
		ExportDir: dir,
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewApp(cfg, log)
}

// stubTextInputs replaces getSimpleText with a stub that dequeues the given
// answers, one per prompt.
func stubTextInputs(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// ---- CreateAccount ----

func TestCreateAccount_PersistsButDoesNotLogIn(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	require.NoError(t, app.store.Load(context.Background()))

	stubTextInputs(t, "alice", "premium")
	stubPassword(t, "pw123")

	require.NoError(t, app.CreateAccount(context.Background()))
	assert.Nil(t, app.current)

	data, err := os.ReadFile(app.config.StorePath)
	require.NoError(t, err)
	assert.Equal(t,
		"alice,"+cryptox.HashPassword([]byte("pw123"))+",PREMIUM\n",
		string(data))
}

func TestCreateAccount_InvalidPlanAbandons(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	require.NoError(t, app.store.Load(context.Background()))

	stubTextInputs(t, "alice", "GOLD")
	stubPassword(t, "pw123")

	err := app.CreateAccount(context.Background())
	require.ErrorIs(t, err, common.ErrUnknownPlan)

	_, statErr := os.Stat(app.config.StorePath)
	assert.True(t, os.IsNotExist(statErr), "store file must not be created")
}

// ---- Login ----

func TestLogin_Success(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)

	record := "alice," + cryptox.HashPassword([]byte("pw123")) + ",BASE\n"
	require.NoError(t, os.WriteFile(app.config.StorePath, []byte(record), 0o600))
	require.NoError(t, app.store.Load(context.Background()))

	stubTextInputs(t, "alice")
	stubPassword(t, "pw123")

	require.NoError(t, app.Login(context.Background()))
	require.NotNil(t, app.current)
	assert.Equal(t, "alice", app.current.Username)
	assert.Equal(t, models.PlanBase, app.current.Plan)
}

func TestLogin_TagsSessionLogger(t *testing.T) {
	silencePrintln(t)

	dir := t.TempDir()
	cfg := &config.Config{
		StorePath: filepath.Join(dir, "usuarios.csv"),
		ExportDir: dir,
	}
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	app := NewApp(cfg, log)

	record := "alice," + cryptox.HashPassword([]byte("pw123")) + ",BASE\n"
	require.NoError(t, os.WriteFile(cfg.StorePath, []byte(record), 0o600))
	require.NoError(t, app.store.Load(context.Background()))

	stubTextInputs(t, "alice")
	stubPassword(t, "pw123")

	require.NoError(t, app.Login(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "msg=\"session started\"")
	assert.Contains(t, out, "username=alice")
}

func TestLogin_WrongPassword(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)

	record := "alice," + cryptox.HashPassword([]byte("pw123")) + ",BASE\n"
	require.NoError(t, os.WriteFile(app.config.StorePath, []byte(record), 0o600))
	require.NoError(t, app.store.Load(context.Background()))

	stubTextInputs(t, "alice")
	stubPassword(t, "nope")

	err := app.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, app.current)
}
