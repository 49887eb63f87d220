package server

import (
	"encoding/json"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"skirmish/internal/config"
	"skirmish/internal/game"
	"skirmish/internal/protocol"
)

const (
	readLimit    = 1 << 16
	pongWait     = 60 * time.Second
	pingInterval = 54 * time.Second
	writeWait    = 10 * time.Second
)

// Server handles HTTP and WebSocket connections
type Server struct {
	cfg      config.Config
	room     *game.Room
	upgrader websocket.Upgrader
}

// NewServer creates a server hosting a single room under rules.
func NewServer(cfg config.Config, rules game.Rules) *Server {
	s := &Server{
		cfg:  cfg,
		room: game.NewRoom(rules),
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin:     s.checkOrigin,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/status", s.handleStatus)
	if s.cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
	}
	return mux
}

// Start starts the room loop and serves on the configured address.
func (s *Server) Start() error {
	go s.room.Start()
	defer s.room.Stop()

	log.Printf("Server starting on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// checkOrigin allows every origin unless an allow-list is configured.
func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, r.Header.Get("Origin"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.room.Stats()); err != nil {
		log.Printf("Error writing status: %v", err)
	}
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := game.NewClient(uuid.NewString(), conn)
	s.room.AddClient(client)

	go s.handleClientReads(client)
	go s.handleClientWrites(client)
}

// handleClientReads reads frames from the client in order and hands them to
// the room. The connection ending is the player's implicit leave.
func (s *Server) handleClientReads(client *game.Client) {
	defer func() {
		s.room.Leave(client.ID)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(readLimit)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, data, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
		if messageType != websocket.BinaryMessage {
			continue
		}

		env, err := protocol.DecodeEnvelope(data)
		if err != nil {
			log.Printf("Error decoding frame from client %s: %v", client.ID, err)
			continue
		}
		s.room.HandleMessage(client.ID, env)
	}
}

// handleClientWrites drains the client's send queue onto the socket. Frames
// already queued are flushed back to back before the pump waits again, and
// a ping goes out every pingInterval. The pump exits when the room closes
// the queue or a write fails.
func (s *Server) handleClientWrites(client *game.Client) {
	conn := client.Conn
	ping := time.NewTicker(pingInterval)
	defer func() {
		ping.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-ping.C:
			if err := writeFrame(conn, websocket.PingMessage, nil); err != nil {
				return
			}
		case frame, ok := <-client.Send:
			if !ok {
				closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "left")
				writeFrame(conn, websocket.CloseMessage, closeMsg)
				return
			}
			if err := flushFrames(client, frame); err != nil {
				log.Printf("Write error for client %s: %v", client.ID, err)
				return
			}
		}
	}
}

// flushFrames writes first and then every frame that is already waiting in
// the queue, without blocking for more.
func flushFrames(client *game.Client, first []byte) error {
	if err := writeFrame(client.Conn, websocket.BinaryMessage, first); err != nil {
		return err
	}
	for n := len(client.Send); n > 0; n-- {
		frame, ok := <-client.Send
		if !ok {
			return nil
		}
		if err := writeFrame(client.Conn, websocket.BinaryMessage, frame); err != nil {
			return err
		}
	}
	return nil
}

func writeFrame(conn *websocket.Conn, messageType int, data []byte) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(messageType, data)
}
