// Package realtime hosts the websocket endpoint. Clients can connect and
// stay connected, but nothing is ever pushed: results are served over the
// HTTP API only, and this layer just tracks and logs connections.
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"breadthpulse/internal/logger"
)

const (
	pongWait       = 60 * time.Second
	maxMessageSize = 4096
)

// Server accepts websocket connections and logs their lifecycle.
type Server struct {
	upgrader websocket.Upgrader

	mu        sync.Mutex
	connected int
}

func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Same-origin policy is handled by the HTTP layer's CORS setup.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Register mounts the websocket endpoint on the router.
func (s *Server) Register(r *gin.Engine) {
	r.GET("/ws", s.handle)
}

// Connected reports the number of currently open connections.
func (s *Server) Connected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Server) handle(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("websocket upgrade failed")
		return
	}

	s.track(1)
	logger.L().Info().Str("client_ip", c.ClientIP()).Msg("websocket client connected")

	go s.readLoop(conn, c.ClientIP())
}

// readLoop drains and discards client frames, acting as a watchdog for the
// connection. It exists so pings keep the connection alive and so we notice
// disconnects; incoming payloads are intentionally ignored.
func (s *Server) readLoop(conn *websocket.Conn, clientIP string) {
	defer func() {
		_ = conn.Close()
		s.track(-1)
		logger.L().Info().Str("client_ip", clientIP).Msg("websocket client disconnected")
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.L().Debug().Err(err).Str("client_ip", clientIP).Msg("websocket read error")
			}
			return
		}
	}
}

func (s *Server) track(delta int) {
	s.mu.Lock()
	s.connected += delta
	s.mu.Unlock()
}
