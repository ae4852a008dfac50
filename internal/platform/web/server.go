// Package web streams the simulation to browser clients over a websocket.
// One goroutine owns the simulation and steps it on a ticker; clients
// receive msgpack frames and send JSON commands.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/skyflyer/internal/core"
	"github.com/vovakirdan/skyflyer/internal/storage"
)

// Connection timings
const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = 25 * time.Second
	readLimit   = 4096
	sendBacklog = 8
)

// Largest playfield a client may request, in world units.
const (
	maxPlayfieldW = 7680
	maxPlayfieldH = 4320
)

// Frame is one server to client update.
type Frame struct {
	Seq    uint64         `msgpack:"seq"`
	State  core.GameState `msgpack:"state"`
	Scene  core.Scene     `msgpack:"scene"`
	Events []string       `msgpack:"events,omitempty"`
}

// Command is one client to server message.
type Command struct {
	Type   string  `json:"type"`
	Repeat bool    `json:"repeat"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Resizable is a simulation whose playfield can be set in world units.
type Resizable interface {
	SetPlayfield(w, h float64)
}

// Config holds the bridge settings.
type Config struct {
	TickRate int
	Seed     int64
	Store    *storage.Store // optional run history
	Logger   *log.Logger
}

// Server runs the simulation loop and serves websocket clients.
type Server struct {
	sim      core.Simulation
	cfg      Config
	logger   *log.Logger
	queue    *core.CommandQueue
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[*client]struct{}
	last     []byte // latest encoded frame for new clients
	resize   *[2]float64
	seq      uint64
	runSaved bool
}

// NewServer creates a bridge around sim and starts a new run.
func NewServer(sim core.Simulation, cfg Config) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rc := core.DefaultConfig()
	rc.TickRate = cfg.TickRate
	rc.Seed = cfg.Seed
	sim.Reset(rc)

	s := &Server{
		sim:     sim,
		cfg:     cfg,
		logger:  logger,
		queue:   &core.CommandQueue{},
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			// Any origin may watch and play
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.last = s.encode(core.StepResult{State: sim.State()})
	return s
}

// Handler returns the HTTP routes of the bridge.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	return mux
}

// Run steps the simulation until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeClients()
			return
		case <-ticker.C:
			s.step()
		}
	}
}

// step runs one tick and broadcasts the result.
func (s *Server) step() {
	s.mu.Lock()
	resize := s.resize
	s.resize = nil
	s.mu.Unlock()

	if resize != nil {
		if r, ok := s.sim.(Resizable); ok {
			r.SetPlayfield(resize[0], resize[1])
		}
	}

	res := s.sim.Step(s.queue.Drain())
	s.logEvents(res)
	s.recordRun(res.State)

	// Idle frames are skipped while nothing moves
	moving := !res.State.Paused && !res.State.Terminal()
	if !res.Changed && !moving {
		return
	}
	s.broadcast(s.encode(res))
}

func (s *Server) encode(res core.StepResult) []byte {
	s.seq++
	frame := Frame{
		Seq:   s.seq,
		State: res.State,
		Scene: s.sim.Scene(),
	}
	for _, ev := range res.Events {
		frame.Events = append(frame.Events, ev.Kind.String())
	}
	data, err := msgpack.Marshal(&frame)
	if err != nil {
		s.logger.Error("could not encode frame", "error", err)
		return nil
	}
	return data
}

func (s *Server) logEvents(res core.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventStarCollected, core.EventShieldGained:
			s.logger.Debug("event", "kind", ev.Kind, "level", ev.Level)
		default:
			s.logger.Info("event", "kind", ev.Kind, "level", ev.Level, "score", res.State.Score)
		}
	}
}

// recordRun saves the run once per entry into a terminal state.
func (s *Server) recordRun(st core.GameState) {
	if !st.Terminal() {
		s.runSaved = false
		return
	}
	if s.runSaved {
		return
	}
	s.runSaved = true
	if s.cfg.Store == nil || st.Score <= 0 {
		return
	}
	run := storage.Run{GameID: s.sim.ID(), Score: st.Score, Level: st.Level, Victory: st.Victory}
	if _, err := s.cfg.Store.SaveRun(run); err != nil {
		s.logger.Warn("could not save run", "error", err)
	}
}

func (s *Server) broadcast(data []byte) {
	if data == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Slow client, skip this frame
		}
	}
}

// handleCommand applies one client message. Repeats are dropped.
func (s *Server) handleCommand(cmd Command) error {
	if cmd.Repeat {
		return nil
	}
	if cmd.Type == "resize" {
		if cmd.Width <= 0 || cmd.Height <= 0 || cmd.Width > maxPlayfieldW || cmd.Height > maxPlayfieldH {
			return fmt.Errorf("web: bad resize %vx%v", cmd.Width, cmd.Height)
		}
		s.mu.Lock()
		s.resize = &[2]float64{cmd.Width, cmd.Height}
		s.mu.Unlock()
		return nil
	}

	c := core.ParseCommand(cmd.Type)
	if c == core.CommandNone {
		return fmt.Errorf("web: unknown command %q", cmd.Type)
	}
	s.queue.Push(c)
	return nil
}

// client is one websocket connection.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBacklog)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	if s.last != nil {
		c.send <- s.last
	}
	count := len(s.clients)
	s.mu.Unlock()
	s.logger.Info("client connected", "remote", r.RemoteAddr, "clients", count)

	go s.writePump(c)
	s.readPump(c)

	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
	s.logger.Info("client disconnected", "remote", r.RemoteAddr)
}

func (s *Server) readPump(c *client) {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("read failed", "error", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.logger.Debug("bad command", "error", err)
			continue
		}
		if err := s.handleCommand(cmd); err != nil {
			s.logger.Debug("command rejected", "error", err)
		}
	}
}

func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
}

// ListenAndServe serves the bridge on addr and steps the simulation until
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web bridge", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		return srv.Shutdown(shutdownCtx)
	}
}
