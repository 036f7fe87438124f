package detector

import (
	"testing"

	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
)

func textMessage(text string, entities ...message.Entity) *message.Message {
	return &message.Message{
		ID:          1,
		ChatID:      -100,
		From:        &message.Sender{ID: 42},
		ContentType: message.ContentTypeText,
		Text:        text,
		Entities:    entities,
	}
}

func urlEntity(value string) message.Entity {
	return message.Entity{Kind: message.EntityKindUrl, Value: value}
}

func dcWith(urls, domains, commands []string) *domain.DetectionContext {
	var entries []domain.AllowlistEntry
	for _, u := range urls {
		entries = append(entries, domain.AllowlistEntry{AllowlistType: domain.AllowlistTypeUrl, Pattern: u})
	}
	for _, d := range domains {
		entries = append(entries, domain.AllowlistEntry{AllowlistType: domain.AllowlistTypeDomain, Pattern: d})
	}
	for _, c := range commands {
		entries = append(entries, domain.AllowlistEntry{AllowlistType: domain.AllowlistTypeCommand, Pattern: c})
	}
	return domain.NewDetectionContext(-100, entries)
}

func TestDefaultRegistry_CoversEveryLockType(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range domain.LockTypeNames() {
		lockType := domain.LockType(name)
		d, ok := r.Get(lockType)
		if !ok {
			t.Errorf("no detector registered for %s", lockType)
			continue
		}
		if d.LockType() != lockType {
			t.Errorf("detector for %s declares %s", lockType, d.LockType())
		}
	}
}

func TestRegistry_DuplicateLastWins(t *testing.T) {
	first := Content(domain.LockTypePhoto, message.ContentTypePhoto)
	second := Content(domain.LockTypePhoto, message.ContentTypeVideo)

	r := NewRegistry(first, second)
	d, ok := r.Get(domain.LockTypePhoto)
	if !ok {
		t.Fatal("expected photo detector")
	}
	if !d.Detect(&message.Message{ContentType: message.ContentTypeVideo}, nil) {
		t.Error("expected the last registration to win")
	}
	if len(r.Types()) != 1 {
		t.Errorf("expected 1 registered type, got %d", len(r.Types()))
	}
}

func TestRegistry_TypesSorted(t *testing.T) {
	types := DefaultRegistry().Types()
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Fatalf("types not sorted at %d: %s >= %s", i, types[i-1], types[i])
		}
	}
}

func TestURLDetector(t *testing.T) {
	tests := []struct {
		name string
		msg  *message.Message
		dc   *domain.DetectionContext
		want bool
	}{
		{
			name: "no links",
			msg:  textMessage("hello"),
			dc:   dcWith(nil, nil, nil),
			want: false,
		},
		{
			name: "link without allowlist",
			msg:  textMessage("check https://spam.example", urlEntity("https://spam.example")),
			dc:   dcWith(nil, nil, nil),
			want: true,
		},
		{
			name: "allowlisted domain",
			msg:  textMessage("check https://example.com/page", urlEntity("https://example.com/page")),
			dc:   dcWith(nil, []string{"example.com"}, nil),
			want: false,
		},
		{
			name: "subdomain matches registrable domain",
			msg:  textMessage("docs.example.com/x", urlEntity("docs.example.com/x")),
			dc:   dcWith(nil, []string{"Example.COM"}, nil),
			want: false,
		},
		{
			name: "registrable domain respects public suffixes",
			msg:  textMessage("https://evil.co.uk", urlEntity("https://evil.co.uk")),
			dc:   dcWith(nil, []string{"good.co.uk"}, nil),
			want: true,
		},
		{
			name: "allowlisted exact url is case insensitive",
			msg:  textMessage("HTTPS://Foo.org/A", urlEntity("HTTPS://Foo.org/A")),
			dc:   dcWith([]string{"https://foo.org/a"}, nil, nil),
			want: false,
		},
		{
			name: "every link must be allowed",
			msg: textMessage("a b",
				urlEntity("https://example.com"),
				urlEntity("https://other.net"),
			),
			dc:   dcWith(nil, []string{"example.com"}, nil),
			want: true,
		},
		{
			name: "text link target is checked",
			msg: textMessage("click", message.Entity{
				Kind: message.EntityKindTextLink, Value: "click", URL: "https://spam.example",
			}),
			dc:   dcWith(nil, []string{"example.com"}, nil),
			want: true,
		},
		{
			name: "nil context allows nothing",
			msg:  textMessage("https://example.com", urlEntity("https://example.com")),
			dc:   nil,
			want: true,
		},
	}

	d := URL()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.msg, tt.dc); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInviteDetector(t *testing.T) {
	tests := []struct {
		name string
		link string
		dc   *domain.DetectionContext
		want bool
	}{
		{name: "plus invite", link: "https://t.me/+AbCdEf123", dc: dcWith(nil, nil, nil), want: true},
		{name: "joinchat invite", link: "telegram.me/joinchat/AbCdEf", dc: dcWith(nil, nil, nil), want: true},
		{name: "public channel link is not an invite", link: "https://t.me/durov", dc: dcWith(nil, nil, nil), want: false},
		{name: "other site", link: "https://example.com/+abc", dc: dcWith(nil, nil, nil), want: false},
		{name: "allowlisted invite", link: "https://t.me/+AbCdEf123", dc: dcWith([]string{"https://t.me/+abcdef123"}, nil, nil), want: false},
	}

	d := Invite()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := textMessage(tt.link, urlEntity(tt.link))
			if got := d.Detect(msg, tt.dc); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.link, got, tt.want)
			}
		})
	}
}

func TestCommandsDetector(t *testing.T) {
	cmd := func(v string) message.Entity { return message.Entity{Kind: message.EntityKindBotCommand, Value: v} }

	tests := []struct {
		name     string
		commands []message.Entity
		allowed  []string
		want     bool
	}{
		{name: "no commands", want: false},
		{name: "unlisted command", commands: []message.Entity{cmd("/start")}, want: true},
		{name: "listed without slash", commands: []message.Entity{cmd("/start")}, allowed: []string{"start"}, want: false},
		{name: "bot suffix dropped", commands: []message.Entity{cmd("/Start@SomeBot")}, allowed: []string{"/start"}, want: false},
		{name: "one unlisted among listed", commands: []message.Entity{cmd("/start"), cmd("/ban")}, allowed: []string{"start"}, want: true},
	}

	d := Commands()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := textMessage("text", tt.commands...)
			if got := d.Detect(msg, dcWith(nil, nil, tt.allowed)); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMentionDetector(t *testing.T) {
	d := Mention()
	dc := dcWith(nil, nil, nil)

	if d.Detect(textMessage("hello"), dc) {
		t.Error("expected no violation without mentions")
	}
	if !d.Detect(textMessage("@bob", message.Entity{Kind: message.EntityKindMention, Value: "@bob"}), dc) {
		t.Error("expected @mention to violate")
	}
	if !d.Detect(textMessage("Bob", message.Entity{Kind: message.EntityKindTextMention, Value: "Bob"}), dc) {
		t.Error("expected text mention to violate")
	}
}

func TestSimpleDetectors(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		lockType domain.LockType
		msg      *message.Message
		want     bool
	}{
		{domain.LockTypePhoto, &message.Message{ContentType: message.ContentTypePhoto}, true},
		{domain.LockTypePhoto, textMessage("hi"), false},
		{domain.LockTypeVideonote, &message.Message{ContentType: message.ContentTypeVideoNote}, true},
		{domain.LockTypeText, textMessage("hi"), true},
		{domain.LockTypeText, &message.Message{ContentType: message.ContentTypePhoto, Caption: "hi"}, false},
		{domain.LockTypeForward, &message.Message{Forward: &message.Forward{Kind: message.ForwardKindChat}}, true},
		{domain.LockTypeForwarduser, &message.Message{Forward: &message.Forward{Kind: message.ForwardKindHiddenUser}}, true},
		{domain.LockTypeForwarduser, &message.Message{Forward: &message.Forward{Kind: message.ForwardKindChannel}}, false},
		{domain.LockTypeForwardchannel, &message.Message{Forward: &message.Forward{Kind: message.ForwardKindChannel}}, true},
		{domain.LockTypeForwardchannel, textMessage("hi"), false},
		{domain.LockTypeInline, &message.Message{ViaBot: true}, true},
		{domain.LockTypeAnonchannel, &message.Message{SenderChat: &message.SenderChat{ID: -1, IsChannel: true}}, true},
		{domain.LockTypeAnonchannel, &message.Message{SenderChat: &message.SenderChat{ID: -1, IsChannel: true}, IsAutomaticForward: true}, false},
		{domain.LockTypeAnonchannel, &message.Message{SenderChat: &message.SenderChat{ID: -100}}, false},
		{domain.LockTypeRtl, textMessage("שלום"), true},
		{domain.LockTypeRtl, textMessage("مرحبا"), true},
		{domain.LockTypeRtl, textMessage("abc\u202edef"), true},
		{domain.LockTypeRtl, textMessage("hello 🎉"), false},
		{domain.LockTypeHashtag, textMessage("#go", message.Entity{Kind: message.EntityKindHashtag, Value: "#go"}), true},
		{domain.LockTypePhone, textMessage("+100", message.Entity{Kind: message.EntityKindPhoneNumber, Value: "+100"}), true},
		{domain.LockTypeEmail, textMessage("hi"), false},
	}

	for _, tt := range tests {
		t.Run(tt.lockType.String(), func(t *testing.T) {
			d, ok := r.Get(tt.lockType)
			if !ok {
				t.Fatalf("no detector for %s", tt.lockType)
			}
			if got := d.Detect(tt.msg, dcWith(nil, nil, nil)); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}
