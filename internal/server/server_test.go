package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/gitville/pkg/city"
)

const sampleHouses = `[{"x":0,"y":0,"color":"#ff6b6b","username":"ada"}]`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, city.HousesFile), []byte(sampleHouses), 0o644))
	return dir
}

func TestServesDocumentOverHTTP(t *testing.T) {
	s := New(seedProject(t), ":0", testLogger())
	s.prime()

	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/city.svg")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "</svg>")
}

func TestIndexShellReconnects(t *testing.T) {
	s := New(seedProject(t), ":0", testLogger())
	s.prime()

	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	assert.Contains(t, page, `src="/city.svg"`)
	assert.Contains(t, page, "new WebSocket")
	assert.Contains(t, page, "setTimeout(connect", "shell must reconnect after the server restarts")

	missing, err := http.Get(srv.URL + "/not-a-page")
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestFilesEndpointServesProjectDir(t *testing.T) {
	s := New(seedProject(t), ":0", testLogger())

	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/files/" + city.HousesFile)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.JSONEq(t, sampleHouses, string(body))
}

func TestReloadPushedOverSocket(t *testing.T) {
	s := New(seedProject(t), ":0", testLogger())
	s.prime()

	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	require.Eventually(t, func() bool {
		s.cmu.Lock()
		defer s.cmu.Unlock()
		return len(s.clients) == 1
	}, time.Second, 10*time.Millisecond, "client never registered")

	s.broadcast("reload")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "reload", string(msg))
}

func TestRefreshSwapsDocumentOnChange(t *testing.T) {
	dir := seedProject(t)
	s := New(dir, ":0", testLogger())
	s.prime()
	day := string(s.document())

	last := s.stamp()
	night := `{"weather":"none","timeOfDay":"night"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, city.WorldFile), []byte(night), 0o644))

	got := s.refresh(last)
	assert.NotEqual(t, last, got, "fingerprint should move with the new file")
	refreshed := string(s.document())
	assert.NotEqual(t, day, refreshed)
	assert.Contains(t, refreshed, "@keyframes flicker", "night document carries fireflies")
}

func TestRefreshKeepsLastGoodDocument(t *testing.T) {
	dir := seedProject(t)
	s := New(dir, ":0", testLogger())
	s.prime()
	good := string(s.document())

	require.NoError(t, os.WriteFile(filepath.Join(dir, city.HousesFile), []byte("{broken"), 0o644))

	got := s.refresh("stale")
	assert.NotEqual(t, "stale", got)
	assert.Equal(t, good, string(s.document()), "broken snapshot must not replace the served document")
}

func TestRefreshNoopWhenUnchanged(t *testing.T) {
	s := New(seedProject(t), ":0", testLogger())
	s.prime()

	last := s.stamp()
	assert.Equal(t, last, s.refresh(last))
}

func TestPrimeFallsBackOnEmptyDir(t *testing.T) {
	s := New(t.TempDir(), ":0", testLogger())
	s.prime()

	doc := string(s.document())
	assert.Contains(t, doc, "</svg>")
	assert.Contains(t, doc, ">population 5<", "fallback town has five residents")
}
