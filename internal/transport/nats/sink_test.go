package nats

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
)

func TestSink_Publish(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		url = nats.DefaultURL
	}

	sink, err := Connect(url, "test.moderation")
	if err != nil {
		t.Skipf("nats not available at %s: %v", url, err)
	}
	defer sink.Close()

	sub, err := sink.conn.SubscribeSync(sink.Subject(-200))
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	entry := auditDomain.Entry{ChatID: -100, Action: auditDomain.ActionTypeMute, ActorID: 1, Timestamp: time.Now().UTC()}
	if !sink.ValidateChannel(context.Background(), -200) {
		t.Fatal("expected a connected sink to accept the channel")
	}
	if !sink.SendLogEntry(context.Background(), -200, entry) {
		t.Fatal("expected publish to succeed")
	}

	msg, err := sub.NextMsg(2 * time.Second)
	if err != nil {
		t.Fatalf("NextMsg: %v", err)
	}
	var got auditDomain.Entry
	if err := json.Unmarshal(msg.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ChatID != entry.ChatID || got.Action != entry.Action {
		t.Errorf("unexpected entry %+v", got)
	}
}

func TestSink_Subject(t *testing.T) {
	s := NewSink(nil, "moderation.log")
	if got := s.Subject(-1001); got != "moderation.log.-1001" {
		t.Errorf("Subject() = %q", got)
	}
}
