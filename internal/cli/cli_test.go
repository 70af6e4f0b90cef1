package cli

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-predictor/internal/config"
	"github.com/ytget/image-predictor/internal/mockserver"
)

func execute(t *testing.T, runGUI GUIRunner, args ...string) (string, string, error) {
	t.Helper()
	if runGUI == nil {
		runGUI = func(config.Options) error {
			t.Fatal("gui should not be started")
			return nil
		}
	}
	cmd := NewRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"}, runGUI)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writePNG(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 3))))
	path := filepath.Join(t.TempDir(), "sample.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestRootStartsGUI(t *testing.T) {
	var got config.Options
	called := false
	_, _, err := execute(t, func(opts config.Options) error {
		called = true
		got = opts
		return nil
	}, "--endpoint", "http://example.test:9000", "--lang", "en")

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "http://example.test:9000", got.EndpointURL)
	assert.Equal(t, "en", got.Language)
}

func TestVersionShort(t *testing.T) {
	out, _, err := execute(t, nil, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestClassifyRendersSummary(t *testing.T) {
	ts := httptest.NewServer(mockserver.New(nil).Router())
	defer ts.Close()

	out, stderr, err := execute(t, nil, "classify", writePNG(t), "--endpoint", ts.URL, "--details")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, "Beim Bild handelt es sich um ein(e) ")
	assert.Contains(t, out, `"className"`)
	assert.Contains(t, out, "Preview: image/png")
}

func TestClassifyWithoutDetails(t *testing.T) {
	ts := httptest.NewServer(mockserver.New(nil).Router())
	defer ts.Close()

	out, _, err := execute(t, nil, "classify", writePNG(t), "--endpoint", ts.URL, "--lang", "en")
	require.NoError(t, err)
	assert.NotContains(t, out, `"className"`)
}

func TestClassifyWithoutFile(t *testing.T) {
	_, stderr, err := execute(t, nil, "classify", "--endpoint", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.True(t, IsSubmissionFailure(err))
	assert.Equal(t, "Bitte wähle zuerst eine Datei aus.", strings.TrimSpace(stderr))
}

func TestClassifyServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer ts.Close()

	out, stderr, err := execute(t, nil, "classify", writePNG(t), "--endpoint", ts.URL)
	require.Error(t, err)
	assert.True(t, IsSubmissionFailure(err))
	assert.Empty(t, out)
	assert.Equal(t, "Ein Fehler ist aufgetreten: Serverfehler: 500 Internal Server Error - boom", strings.TrimSpace(stderr))
}

func TestPing(t *testing.T) {
	ts := httptest.NewServer(mockserver.New(nil).Router())
	defer ts.Close()

	out, _, err := execute(t, nil, "ping", "--endpoint", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, mockserver.PingMessage)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, nil, "version", "--log-level", "loud")
	assert.Error(t, err)
}
