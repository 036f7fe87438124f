package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
)

type sent struct {
	channelID int64
	entry     domain.Entry
}

type fakeSink struct {
	mu    sync.Mutex
	sent  []sent
	valid bool
	fail  bool
}

func (f *fakeSink) SendLogEntry(_ context.Context, channelID int64, entry domain.Entry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sent{channelID: channelID, entry: entry})
	return !f.fail
}

func (f *fakeSink) ValidateChannel(context.Context, int64) bool { return f.valid }

func (f *fakeSink) all() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.sent...)
}

type fakeResolver map[int64]int64

func (r fakeResolver) LogChannel(_ context.Context, chatID int64) (int64, bool) {
	ch, ok := r[chatID]
	return ch, ok
}

func debounced(chatID int64, value string) domain.Entry {
	return domain.Entry{
		ChatID:  chatID,
		Action:  domain.ActionTypeMaxWarnings,
		Details: map[string]string{"max_warnings": value},
	}
}

func TestLogAction_ImmediateIsSentSynchronously(t *testing.T) {
	sink := &fakeSink{}
	d := New(sink, fakeResolver{1: 100}, time.Hour)

	d.LogAction(domain.Entry{ChatID: 1, Action: domain.ActionTypeBan})

	got := sink.all()
	if len(got) != 1 {
		t.Fatalf("expected 1 sent entry, got %d", len(got))
	}
	if got[0].channelID != 100 {
		t.Errorf("channelID = %d, want 100", got[0].channelID)
	}
	if got[0].entry.Timestamp.IsZero() {
		t.Error("expected timestamp to be filled in")
	}
	if d.PendingCount() != 0 {
		t.Errorf("PendingCount = %d, want 0", d.PendingCount())
	}
}

func TestLogAction_DebounceSendsOnlyLastPayload(t *testing.T) {
	sink := &fakeSink{}
	delay := 150 * time.Millisecond
	d := New(sink, fakeResolver{1: 100}, delay)

	d.LogAction(debounced(1, "3"))
	time.Sleep(delay / 3)
	d.LogAction(debounced(1, "4"))
	time.Sleep(delay / 3)
	d.LogAction(debounced(1, "5"))

	if n := len(sink.all()); n != 0 {
		t.Fatalf("expected nothing sent during the quiet period, got %d", n)
	}

	// Earlier timers would have fired by now had they not been replaced.
	time.Sleep(delay / 2)
	if n := len(sink.all()); n != 0 {
		t.Fatalf("expected replaced timers to stay silent, got %d sends", n)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(sink.all()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	got := sink.all()
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 emission, got %d", len(got))
	}
	if v := got[0].entry.Details["max_warnings"]; v != "5" {
		t.Errorf("emitted payload = %q, want last payload 5", v)
	}
	if d.PendingCount() != 0 {
		t.Errorf("PendingCount = %d, want 0", d.PendingCount())
	}
}

func TestLogAction_KeysAreIndependent(t *testing.T) {
	sink := &fakeSink{}
	d := New(sink, fakeResolver{1: 100, 2: 200}, time.Hour)

	d.LogAction(debounced(1, "3"))
	d.LogAction(debounced(2, "4"))
	d.LogAction(domain.Entry{ChatID: 1, Action: domain.ActionTypeWarningTtl})

	if d.PendingCount() != 3 {
		t.Fatalf("PendingCount = %d, want 3", d.PendingCount())
	}
	d.CancelAll()
}

func TestFlushAll_SendsEverythingAndClearsState(t *testing.T) {
	sink := &fakeSink{}
	d := New(sink, fakeResolver{1: 100, 2: 200}, time.Hour)

	d.LogAction(debounced(1, "3"))
	d.LogAction(debounced(2, "4"))

	d.FlushAll()

	if n := len(sink.all()); n != 2 {
		t.Fatalf("expected 2 sends after FlushAll, got %d", n)
	}
	if d.PendingCount() != 0 {
		t.Fatalf("PendingCount = %d, want 0", d.PendingCount())
	}
}

func TestFlushForChat_OnlyThatChat(t *testing.T) {
	sink := &fakeSink{}
	d := New(sink, fakeResolver{1: 100, 2: 200}, time.Hour)

	d.LogAction(debounced(1, "3"))
	d.LogAction(debounced(2, "4"))

	d.FlushForChat(1)

	got := sink.all()
	if len(got) != 1 || got[0].entry.ChatID != 1 {
		t.Fatalf("expected only chat 1 flushed, got %+v", got)
	}
	if d.PendingCount() != 1 {
		t.Fatalf("PendingCount = %d, want 1", d.PendingCount())
	}
	d.CancelAll()
}

func TestCancelAll_DiscardsWithoutSending(t *testing.T) {
	sink := &fakeSink{}
	delay := 30 * time.Millisecond
	d := New(sink, fakeResolver{1: 100}, delay)

	d.LogAction(debounced(1, "3"))
	d.CancelAll()

	time.Sleep(delay * 3)
	if n := len(sink.all()); n != 0 {
		t.Fatalf("expected no sends after CancelAll, got %d", n)
	}
}

func TestSend_NoChannelDropsEntry(t *testing.T) {
	sink := &fakeSink{}
	d := New(sink, fakeResolver{}, time.Hour)

	d.LogAction(domain.Entry{ChatID: 1, Action: domain.ActionTypeKick})

	if n := len(sink.all()); n != 0 {
		t.Fatalf("expected entry to be dropped, got %d sends", n)
	}
}

func TestClose_SendsLaterDebouncedEntriesImmediately(t *testing.T) {
	sink := &fakeSink{}
	d := New(sink, fakeResolver{1: 100}, time.Hour)

	d.LogAction(debounced(1, "3"))
	d.Close()
	d.LogAction(debounced(1, "4"))

	got := sink.all()
	if len(got) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(got))
	}
	if d.PendingCount() != 0 {
		t.Fatalf("PendingCount = %d, want 0", d.PendingCount())
	}
}

func TestLogAction_ConcurrentSameKey(t *testing.T) {
	sink := &fakeSink{}
	d := New(sink, fakeResolver{1: 100}, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.LogAction(debounced(1, "x"))
		}()
	}
	wg.Wait()

	if d.PendingCount() != 1 {
		t.Fatalf("PendingCount = %d, want 1", d.PendingCount())
	}
	d.FlushAll()
	if n := len(sink.all()); n != 1 {
		t.Fatalf("expected 1 send, got %d", n)
	}
}

func TestFanoutSink(t *testing.T) {
	ok := &fakeSink{valid: true}
	failing := &fakeSink{fail: true, valid: false}

	f := NewFanoutSink(ok, nil, failing)
	if !f.SendLogEntry(context.Background(), 1, domain.Entry{}) {
		t.Error("expected delivery when one sink succeeds")
	}
	if len(ok.all()) != 1 || len(failing.all()) != 1 {
		t.Error("expected every sink to receive the entry")
	}
	if f.ValidateChannel(context.Background(), 1) {
		t.Error("expected validation to fail when any sink rejects the channel")
	}
	if NewFanoutSink().ValidateChannel(context.Background(), 1) {
		t.Error("expected empty fanout to reject channels")
	}
}
