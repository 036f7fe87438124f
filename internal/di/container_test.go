package di

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-telegram/bot"
	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	auditService "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/service"
	chatconfigService "github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/service"
	"github.com/reshetovitsme/chat-moderator/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/samber/do/v2"
)

type lazyService struct{ built bool }

func TestInvokeIfCreated(t *testing.T) {
	injector := do.New()
	do.Provide(injector, func(do.Injector) (*lazyService, error) {
		return &lazyService{built: true}, nil
	})

	if _, ok := invokeIfCreated[*lazyService](injector); ok {
		t.Fatal("expected lazy service to be skipped before first use")
	}

	do.MustInvoke[*lazyService](injector)

	p, ok := invokeIfCreated[*lazyService](injector)
	if !ok || !p.built {
		t.Fatalf("expected built service, got %+v ok=%v", p, ok)
	}
}

func TestModels(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Models() {
		tabler, ok := m.(interface{ TableName() string })
		if !ok {
			t.Fatalf("%T has no table name", m)
		}
		if seen[tabler.TableName()] {
			t.Errorf("duplicate table %s", tabler.TableName())
		}
		seen[tabler.TableName()] = true
	}
}

type stubSink struct{ valid bool }

func (s stubSink) SendLogEntry(context.Context, int64, auditDomain.Entry) bool { return true }
func (s stubSink) ValidateChannel(context.Context, int64) bool                 { return s.valid }

func TestSetLogChannel_ValidatesAgainstEverySink(t *testing.T) {
	tests := []struct {
		name    string
		sinks   []auditService.Sink
		wantErr bool
	}{
		{"all sinks accept", []auditService.Sink{stubSink{valid: true}, stubSink{valid: true}}, false},
		{"second sink rejects", []auditService.Sink{stubSink{valid: true}, stubSink{valid: false}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			injector, err := Setup()
			if err != nil {
				t.Fatalf("Setup: %v", err)
			}
			do.OverrideValue(injector, &config.Config{
				DatabaseDriver: config.DatabaseDriverSqlite,
				DatabaseDSN:    filepath.Join(t.TempDir(), "moderator.db"),
			})
			do.OverrideValue(injector, auditService.NewFanoutSink(tt.sinks...))
			t.Cleanup(func() {
				if err := Shutdown(context.Background(), injector); err != nil {
					t.Errorf("Shutdown: %v", err)
				}
			})

			configs := do.MustInvoke[*chatconfigService.Service](injector)
			err = configs.SetLogChannel(context.Background(), -100, 1, -200)
			if got := errors.Is(err, sharedErrors.ErrInvalidLogChannel); got != tt.wantErr {
				t.Fatalf("SetLogChannel error = %v, want invalid channel %v", err, tt.wantErr)
			}

			if _, ok := invokeIfCreated[*bot.Bot](injector); ok {
				t.Error("expected the bot to stay unbuilt")
			}
		})
	}
}
