// Package server runs the live-reload development server: it serves the
// exported document over HTTP, polls the snapshot files for changes, and
// pushes a reload event to connected pages after each successful
// re-export.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/export"
)

// pollEvery is the watcher's check interval.
const pollEvery = time.Second

// watchedFiles are the inputs whose changes trigger a re-export.
var watchedFiles = []string{
	city.HousesFile,
	city.LegacyHousesFile,
	city.RoadsFile,
	city.WorldFile,
	city.ProjectFile,
}

// Server is the development server for one project directory.
type Server struct {
	dir  string
	addr string
	log  *slog.Logger

	upgrader websocket.Upgrader

	mu  sync.RWMutex
	doc []byte

	cmu     sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a server for the given project directory.
func New(dir, addr string, log *slog.Logger) *Server {
	return &Server{
		dir:  dir,
		addr: addr,
		log:  log,
		upgrader: websocket.Upgrader{
			// Local dev tool; the page comes from this same process.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Start primes the served document, launches the watcher, and serves
// until the listener fails.
func (s *Server) Start() error {
	s.prime()
	go s.watch()

	s.log.Info("dev server listening", "addr", s.addr, "project", s.dir)
	return http.ListenAndServe(s.addr, s.routes())
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /city.svg", s.handleDocument)
	mux.HandleFunc("GET /ws", s.handleReloadSocket)
	mux.Handle("GET /files/", http.StripPrefix("/files/", http.FileServer(http.Dir(s.dir))))
	return mux
}

// prime loads the first document, substituting the demo town when the
// snapshot cannot be exported yet so the page is never blank.
func (s *Server) prime() {
	doc, err := s.export()
	if err != nil {
		s.log.Warn("initial export failed, serving fallback town", "error", err)
		proj, perr := city.LoadProject(s.dir)
		if perr != nil {
			proj = city.DefaultProject()
		}
		doc = []byte(export.Document(city.Fallback(), proj))
	}
	s.setDoc(doc)
}

// export renders the current snapshot into a document.
func (s *Server) export() ([]byte, error) {
	proj, err := city.LoadProject(s.dir)
	if err != nil {
		return nil, err
	}
	snap, err := city.LoadSnapshot(s.dir)
	if err != nil {
		return nil, err
	}
	return []byte(export.Document(snap, proj)), nil
}

// watch polls the input files and refreshes the document when any of
// them move.
func (s *Server) watch() {
	tick := time.NewTicker(pollEvery)
	defer tick.Stop()

	last := s.stamp()
	for range tick.C {
		last = s.refresh(last)
	}
}

// refresh re-exports and notifies pages when the file fingerprint moved
// since last. A failed re-export keeps the last good document.
func (s *Server) refresh(last string) string {
	cur := s.stamp()
	if cur == last {
		return last
	}
	doc, err := s.export()
	if err != nil {
		s.log.Error("re-export failed, keeping last good document", "error", err)
		return cur
	}
	s.setDoc(doc)
	s.broadcast("reload")
	s.log.Info("snapshot changed, document refreshed", "bytes", len(doc))
	return cur
}

// stamp fingerprints the watched files by size and mtime.
func (s *Server) stamp() string {
	var b strings.Builder
	for _, name := range watchedFiles {
		fi, err := os.Stat(filepath.Join(s.dir, name))
		if err != nil {
			fmt.Fprintf(&b, "%s absent;", name)
			continue
		}
		fmt.Fprintf(&b, "%s %d %d;", name, fi.Size(), fi.ModTime().UnixNano())
	}
	return b.String()
}

func (s *Server) setDoc(doc []byte) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

func (s *Server) document() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *Server) handleDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(s.document())
}

// handleReloadSocket parks the page's connection in the client set. The
// read loop exists only to notice the browser going away.
func (s *Server) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}
	s.addClient(conn)
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast pushes a text event to every page, dropping clients that
// fail to take it. Only the watcher goroutine broadcasts, so writes to
// one connection never interleave.
func (s *Server) broadcast(event string) {
	s.cmu.Lock()
	defer s.cmu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(event)); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *Server) addClient(conn *websocket.Conn) {
	s.cmu.Lock()
	s.clients[conn] = struct{}{}
	n := len(s.clients)
	s.cmu.Unlock()
	s.log.Info("page connected", "clients", n)
}

func (s *Server) dropClient(conn *websocket.Conn) {
	conn.Close()
	s.cmu.Lock()
	delete(s.clients, conn)
	s.cmu.Unlock()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>GitVille</title></head>
<body style="margin:0;background:#263238;display:flex;align-items:center;justify-content:center;min-height:100vh">
<img id="city" src="/city.svg" style="max-width:100%;max-height:100vh" alt="town"/>
<script>
(function () {
	var img = document.getElementById("city");
	function connect() {
		var ws = new WebSocket("ws://" + location.host + "/ws");
		ws.onmessage = function () { img.src = "/city.svg?t=" + Date.now(); };
		ws.onclose = function () { setTimeout(connect, 1000); };
	}
	connect();
})();
</script>
</body></html>`)
}
