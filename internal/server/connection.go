package server

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/protocol"
)

// Connection wraps one WebSocket client. Each connection owns at most one
// session at a time; a finished game can be replaced with a fresh start
// message on the same connection.
type Connection struct {
	conn      *websocket.Conn
	send      chan *protocol.Message
	server    *Server
	session   *Session
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection wrapper around an upgraded socket.
func NewConnection(conn *websocket.Conn, server *Server, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:   conn,
		send:   make(chan *protocol.Message, 16),
		server: server,
		logger: logger.WithPrefix("conn"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		if c.session != nil {
			c.server.registry.Remove(c.session.ID)
		}
		err = c.conn.Close()
	})
	return err
}

func (c *Connection) readPump() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.ctx.Done():
		}
		_ = c.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("Unexpected close", "error", err)
			}
			return
		}

		msg, err := protocol.Unmarshal(data)
		if err != nil {
			c.sendError("bad_message", err.Error())
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Connection) writePump() {
	for msg := range c.send {
		data, err := protocol.Marshal(msg)
		if err != nil {
			c.logger.Error("Failed to marshal message", "type", msg.Type, "error", err)
			continue
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			c.logger.Debug("Write failed", "error", err)
			return
		}
	}
}

func (c *Connection) handleMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.TypeStart:
		c.handleStart(msg)
	case protocol.TypeMove:
		c.handleMove(msg)
	default:
		c.sendError("unknown_type", "unknown message type: "+string(msg.Type))
	}
}

func (c *Connection) handleStart(msg *protocol.Message) {
	var data protocol.StartData
	if len(msg.Data) > 0 {
		if err := protocol.DecodeData(msg, &data); err != nil {
			c.sendError("bad_payload", err.Error())
			return
		}
	}

	// A still-running game cannot be abandoned mid-round; a finished one can.
	if c.session != nil && !c.session.GameOver() {
		c.sendError("game_in_progress", "finish the current game before starting a new one")
		return
	}
	if c.session != nil {
		c.server.registry.Remove(c.session.ID)
	}

	seed := c.server.nextSeed()
	session, err := c.server.registry.Create(seed)
	if err != nil {
		c.sendError("session_limit", err.Error())
		return
	}
	c.session = session

	c.logger.Info("Game started", "session", session.ID, "player", data.PlayerName, "seed", seed)

	c.sendMessage(protocol.TypeWelcome, protocol.WelcomeData{
		SessionID:   session.ID,
		TotalRounds: game.TotalRounds,
	})
}

func (c *Connection) handleMove(msg *protocol.Message) {
	if c.session == nil {
		c.sendError("no_session", "send a start message before playing")
		return
	}

	var data protocol.MoveData
	if err := protocol.DecodeData(msg, &data); err != nil {
		c.sendError("bad_payload", err.Error())
		return
	}

	result, err := c.session.PlayRound(data.Input)
	if err != nil {
		c.sendError("game_over", err.Error())
		return
	}
	c.server.registry.Touch(c.session)

	c.sendMessage(protocol.TypeRoundResult, result)

	if c.session.GameOver() {
		c.sendMessage(protocol.TypeGameOver, c.session.Result())
	}
}

func (c *Connection) sendMessage(messageType protocol.MessageType, data interface{}) {
	// Close() can close the send channel while a handler is mid-send; the
	// panic is expected during shutdown.
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	msg, err := protocol.NewMessage(messageType, data)
	if err != nil {
		c.logger.Error("Failed to build message", "type", messageType, "error", err)
		return
	}

	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	}
}

func (c *Connection) sendError(code, message string) {
	c.sendMessage(protocol.TypeError, protocol.ErrorData{Code: code, Message: message})
}
