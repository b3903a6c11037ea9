package tilt

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gravity-snake/internal/registry"
	"github.com/vovakirdan/gravity-snake/internal/storage"
)

//go:embed web/index.html
var indexHTML []byte

const (
	// DefaultAddress is where the bridge listens unless told otherwise.
	DefaultAddress = ":8099"

	defaultScoreLimit = 10
	maxScoreLimit     = 100
	maxMessageSize    = 512
	pongWait          = 60 * time.Second
)

// Server is the tilt bridge: a WebSocket endpoint feeding a Relay plus a
// read-only JSON view of the score store.
type Server struct {
	relay    *Relay
	store    *storage.Store
	logger   *log.Logger
	engine   *gin.Engine
	upgrader websocket.Upgrader
	conns    atomic.Int64
}

// NewServer builds the bridge. The store may be nil, in which case the
// score endpoints answer 503.
func NewServer(relay *Relay, store *storage.Store, logger *log.Logger) *Server {
	if relay == nil {
		relay = &Relay{}
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		relay:  relay,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Phones load the page from this server, but over LAN IPs that
			// rarely match the Host header.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	engine.GET("/", s.handleIndex)
	engine.GET("/ws", s.handleWS)

	api := engine.Group("/api")
	api.GET("/status", s.handleStatus)
	api.GET("/difficulties", s.handleDifficulties)
	api.GET("/scores/:difficulty", s.handleScores)
	api.GET("/runs/:id", s.handleRun)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler for the bridge.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Connections returns the number of open WebSocket clients.
func (s *Server) Connections() int {
	return int(s.conns.Load())
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("tilt bridge listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("tilt: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("tilt bridge shutting down")
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs API requests. WebSocket lifecycles are logged by the
// handler itself.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.Request.URL.Path == "/ws" {
			return
		}
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

type welcome struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type wsError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (s *Server) handleWS(c *gin.Context) {
	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	id := uuid.NewString()
	logger := s.logger.With("conn", id, "remote", c.Request.RemoteAddr)
	s.conns.Add(1)
	defer s.conns.Add(-1)

	logger.Info("tilt client connected")
	if err := ws.WriteJSON(welcome{Type: "welcome", ID: id}); err != nil {
		logger.Warn("cannot greet tilt client", "error", err)
		return
	}

	ws.SetReadLimit(maxMessageSize)
	//nolint:errcheck // Deadline errors surface on the next read
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	var received, dropped int
	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("tilt client read error", "error", err)
			}
			break
		}
		//nolint:errcheck // Deadline errors surface on the next read
		ws.SetReadDeadline(time.Now().Add(pongWait))

		angle, ok, err := Decode(raw)
		if err != nil {
			logger.Debug("rejected tilt message", "error", err)
			if werr := ws.WriteJSON(wsError{Type: "error", Message: err.Error()}); werr != nil {
				break
			}
			continue
		}
		if !ok {
			continue
		}
		received++
		if !s.relay.SetHeading(angle) {
			dropped++
		}
	}

	logger.Info("tilt client disconnected", "readings", received, "unattached", dropped)
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connections": s.Connections()})
}

type difficultyView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Best        int    `json:"best"`
}

func (s *Server) handleDifficulties(c *gin.Context) {
	games := registry.List()
	out := make([]difficultyView, 0, len(games))
	for _, g := range games {
		v := difficultyView{ID: g.ID, Title: g.Title, Description: g.Description}
		if s.store != nil {
			best, err := s.store.HighScore(g.ID)
			if err != nil {
				s.internalError(c, err)
				return
			}
			v.Best = best
		}
		out = append(out, v)
	}
	c.JSON(http.StatusOK, out)
}

type runView struct {
	RunID      string    `json:"run_id"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Length     int       `json:"length"`
	Walls      int       `json:"walls"`
	Ticks      int64     `json:"ticks"`
	DeathCause string    `json:"death_cause"`
	CreatedAt  time.Time `json:"created_at"`
}

func viewOf(r storage.Run) runView {
	return runView{
		RunID:      r.RunID,
		Difficulty: r.Difficulty,
		Score:      r.Score,
		Length:     r.Length,
		Walls:      r.Walls,
		Ticks:      r.Ticks,
		DeathCause: r.DeathCause,
		CreatedAt:  r.CreatedAt,
	}
}

func (s *Server) handleScores(c *gin.Context) {
	difficulty := c.Param("difficulty")
	if !registry.Exists(difficulty) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown difficulty %q", difficulty)})
		return
	}

	limit := defaultScoreLimit
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxScoreLimit)
	}

	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "score store unavailable"})
		return
	}

	runs, err := s.store.TopScores(difficulty, limit)
	if err != nil {
		s.internalError(c, err)
		return
	}
	out := make([]runView, 0, len(runs))
	for _, r := range runs {
		out = append(out, viewOf(r))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run id must be a UUID"})
		return
	}
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "score store unavailable"})
		return
	}

	run, err := s.store.RunByID(id.String())
	if err != nil {
		s.internalError(c, err)
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, viewOf(*run))
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error("score store query failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
