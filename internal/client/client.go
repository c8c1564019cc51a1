// Package client implements the interactive WebSocket client for playing
// against a remote referee server.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/protocol"
)

// Client connects to a referee server and plays one game per Run call.
type Client struct {
	url    string
	logger *log.Logger
	conn   *websocket.Conn
}

// New creates a client for the given ws:// URL.
func New(url string, logger *log.Logger) *Client {
	return &Client{
		url:    url,
		logger: logger.WithPrefix("client"),
	}
}

// Connect dials the server.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	c.conn = conn
	return nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Run plays a full game: moves are read line by line from in, round results
// and the final summary are written to out. If in runs out before the game
// is over, Run reports io.ErrUnexpectedEOF.
func (c *Client) Run(ctx context.Context, playerName string, in io.Reader, out io.Writer) error {
	if err := c.sendMessage(protocol.TypeStart, protocol.StartData{PlayerName: playerName}); err != nil {
		return err
	}

	welcome, err := c.waitFor(protocol.TypeWelcome)
	if err != nil {
		return err
	}
	var welcomeData protocol.WelcomeData
	if err := protocol.DecodeData(welcome, &welcomeData); err != nil {
		return err
	}

	fmt.Fprintf(out, "Game %s started: %d rounds. Moves: rock, paper, scissors, bomb (once).\n",
		welcomeData.SessionID, welcomeData.TotalRounds)

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(out, "Your move: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return fmt.Errorf("input closed before game over: %w", io.ErrUnexpectedEOF)
		}
		input := scanner.Text()
		if strings.TrimSpace(input) == "" {
			continue
		}

		if err := c.sendMessage(protocol.TypeMove, protocol.MoveData{Input: input}); err != nil {
			return err
		}

		result, err := c.waitFor(protocol.TypeRoundResult)
		if err != nil {
			return err
		}
		var round protocol.RoundResultData
		if err := protocol.DecodeData(result, &round); err != nil {
			return err
		}
		printRound(out, round)

		if round.State.GameOver {
			over, err := c.waitFor(protocol.TypeGameOver)
			if err != nil {
				return err
			}
			var final protocol.GameOverData
			if err := protocol.DecodeData(over, &final); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, final.Summary)
			return nil
		}
	}
}

func printRound(out io.Writer, round protocol.RoundResultData) {
	if round.Winner == game.OutcomeInvalid {
		fmt.Fprintf(out, "Round %d wasted: %s\n", round.Round, round.Reason)
	} else {
		fmt.Fprintf(out, "Round %d: you played %s, bot played %s -> %s\n",
			round.Round, round.UserMove, round.BotMove, strings.ToUpper(string(round.Winner)))
	}
	fmt.Fprintf(out, "Score: you %d - %d bot (draws %d)\n",
		round.State.UserScore, round.State.BotScore, round.State.Draws)
}

func (c *Client) sendMessage(messageType protocol.MessageType, data interface{}) error {
	msg, err := protocol.NewMessage(messageType, data)
	if err != nil {
		return err
	}
	payload, err := protocol.Marshal(msg)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// waitFor reads messages until one of the wanted type arrives. Server errors
// terminate the wait; anything else is logged and skipped.
func (c *Client) waitFor(want protocol.MessageType) (*protocol.Message, error) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("read message: %w", err)
		}

		msg, err := protocol.Unmarshal(data)
		if err != nil {
			return nil, err
		}

		switch msg.Type {
		case want:
			return msg, nil
		case protocol.TypeError:
			var errData protocol.ErrorData
			if err := protocol.DecodeData(msg, &errData); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("server error %s: %s", errData.Code, errData.Message)
		default:
			c.logger.Debug("Skipping message", "type", msg.Type, "waiting_for", want)
		}
	}
}
