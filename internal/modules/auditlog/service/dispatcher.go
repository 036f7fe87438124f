package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/metrics"
)

const (
	// DefaultDelay is the quiet period before a debounced entry is sent
	DefaultDelay = 15 * time.Second

	sendTimeout = 10 * time.Second
)

// Sink delivers audit entries to a log channel
type Sink interface {
	SendLogEntry(ctx context.Context, channelID int64, entry domain.Entry) bool
	ValidateChannel(ctx context.Context, channelID int64) bool
}

// ChannelResolver finds the log channel configured for a chat
type ChannelResolver interface {
	LogChannel(ctx context.Context, chatID int64) (int64, bool)
}

type pendingEntry struct {
	entry      domain.Entry
	timer      *time.Timer
	lastUpdate time.Time
	generation uint64
}

// Dispatcher forwards discrete audit events immediately and coalesces rapid
// settings edits per (chat, action) into the last payload seen during the
// quiet period.
type Dispatcher struct {
	sink     Sink
	resolver ChannelResolver
	delay    time.Duration

	mu         sync.Mutex
	pending    map[domain.Key]*pendingEntry
	generation uint64
	closed     bool
}

// New creates a dispatcher; a non-positive delay selects DefaultDelay
func New(sink Sink, resolver ChannelResolver, delay time.Duration) *Dispatcher {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Dispatcher{
		sink:     sink,
		resolver: resolver,
		delay:    delay,
		pending:  make(map[domain.Key]*pendingEntry),
	}
}

// LogAction sends or schedules an audit entry
func (d *Dispatcher) LogAction(entry domain.Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if !entry.Action.IsDebounced() {
		metrics.AuditEntries.WithLabelValues("immediate").Inc()
		d.send(entry)
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		metrics.AuditEntries.WithLabelValues("immediate").Inc()
		d.send(entry)
		return
	}

	key := entry.Key()
	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
		metrics.AuditEntries.WithLabelValues("coalesced").Inc()
	} else {
		metrics.AuditPending.Inc()
	}

	d.generation++
	gen := d.generation
	p := &pendingEntry{
		entry:      entry,
		lastUpdate: time.Now(),
		generation: gen,
	}
	p.timer = time.AfterFunc(d.delay, func() { d.fire(key, gen) })
	d.pending[key] = p
	d.mu.Unlock()

	metrics.AuditEntries.WithLabelValues("debounced").Inc()
}

// fire sends the entry of key unless it was replaced or flushed meanwhile
func (d *Dispatcher) fire(key domain.Key, gen uint64) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok || p.generation != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	metrics.AuditPending.Dec()
	d.mu.Unlock()

	d.send(p.entry)
}

// FlushAll sends every pending entry now
func (d *Dispatcher) FlushAll() {
	d.flush(func(domain.Key) bool { return true })
}

// FlushForChat sends the chat's pending entries now
func (d *Dispatcher) FlushForChat(chatID int64) {
	d.flush(func(k domain.Key) bool { return k.ChatID == chatID })
}

// CancelAll discards pending entries without sending them
func (d *Dispatcher) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
		metrics.AuditPending.Dec()
	}
}

// PendingCount returns the number of entries waiting for their timer
func (d *Dispatcher) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Close flushes everything and sends later debounced entries immediately
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.FlushAll()
}

func (d *Dispatcher) flush(match func(domain.Key) bool) {
	d.mu.Lock()
	var entries []*pendingEntry
	for key, p := range d.pending {
		if !match(key) {
			continue
		}
		p.timer.Stop()
		delete(d.pending, key)
		metrics.AuditPending.Dec()
		entries = append(entries, p)
	}
	d.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].lastUpdate.Before(entries[j].lastUpdate)
	})
	for _, p := range entries {
		d.send(p.entry)
	}
}

func (d *Dispatcher) send(entry domain.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	channelID, ok := d.resolver.LogChannel(ctx, entry.ChatID)
	if !ok {
		metrics.AuditEntries.WithLabelValues("dropped").Inc()
		slog.Debug("No log channel configured, dropping audit entry", "chat_id", entry.ChatID, "action", entry.Action)
		return
	}

	if !d.sink.SendLogEntry(ctx, channelID, entry) {
		slog.Warn("Failed to deliver audit entry", "chat_id", entry.ChatID, "channel_id", channelID, "action", entry.Action)
	}
}
