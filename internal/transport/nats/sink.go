// Package nats publishes audit entries to NATS so other services can follow
// a chat's moderation log.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/samber/oops"
)

// Sink publishes each entry as JSON on <prefix>.<channelID>
type Sink struct {
	conn   *nats.Conn
	prefix string
}

// Connect dials url and returns a sink publishing under prefix
func Connect(url, prefix string) (*Sink, error) {
	conn, err := nats.Connect(url,
		nats.Name("chat-moderator"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, oops.With("url", url, "context", "failed to connect to nats").Wrap(err)
	}
	return NewSink(conn, prefix), nil
}

// NewSink wraps an established connection
func NewSink(conn *nats.Conn, prefix string) *Sink {
	return &Sink{conn: conn, prefix: prefix}
}

// Subject is where entries for channelID are published
func (s *Sink) Subject(channelID int64) string {
	return fmt.Sprintf("%s.%d", s.prefix, channelID)
}

func (s *Sink) SendLogEntry(_ context.Context, channelID int64, entry auditDomain.Entry) bool {
	data, err := json.Marshal(entry)
	if err != nil {
		slog.Error("Failed to encode log entry", "chat_id", entry.ChatID, "error", err)
		return false
	}
	if err := s.conn.Publish(s.Subject(channelID), data); err != nil {
		slog.Error("Failed to publish log entry", "subject", s.Subject(channelID), "error", err)
		return false
	}
	return true
}

// ValidateChannel accepts any channel while the connection is usable
func (s *Sink) ValidateChannel(context.Context, int64) bool {
	return s.conn.IsConnected()
}

// Close drains pending publishes and closes the connection
func (s *Sink) Close() error {
	return s.conn.Drain()
}
