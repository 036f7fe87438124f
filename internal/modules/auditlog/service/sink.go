package service

import (
	"context"

	"github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/samber/lo"
)

// FanoutSink sends every entry to all sinks, like slogmulti.Fanout does for
// log records. An entry counts as delivered when at least one sink took it.
type FanoutSink struct {
	sinks []Sink
}

// NewFanoutSink combines sinks, skipping nil ones
func NewFanoutSink(sinks ...Sink) *FanoutSink {
	return &FanoutSink{
		sinks: lo.Filter(sinks, func(s Sink, _ int) bool { return s != nil }),
	}
}

func (f *FanoutSink) SendLogEntry(ctx context.Context, channelID int64, entry domain.Entry) bool {
	delivered := false
	for _, s := range f.sinks {
		if s.SendLogEntry(ctx, channelID, entry) {
			delivered = true
		}
	}
	return delivered
}

// ValidateChannel requires every sink to accept the channel
func (f *FanoutSink) ValidateChannel(ctx context.Context, channelID int64) bool {
	if len(f.sinks) == 0 {
		return false
	}
	return lo.EveryBy(f.sinks, func(s Sink) bool {
		return s.ValidateChannel(ctx, channelID)
	})
}
