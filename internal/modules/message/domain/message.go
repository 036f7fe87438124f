package domain

import "strings"

// Message is an inbound group message reduced to the facts moderation needs.
// It is built by the transport layer and never persisted.
type Message struct {
	ID          int
	ChatID      int64
	From        *Sender
	SenderChat  *SenderChat
	ContentType ContentType
	Text        string
	Caption     string
	Entities    []Entity
	Forward     *Forward
	ViaBot      bool
	// IsAutomaticForward marks the discussion-group copy of a linked channel post
	IsAutomaticForward bool
}

// Sender is the user account behind a message
type Sender struct {
	ID       int64
	Username string
	IsBot    bool
}

// SenderChat is set when a message is sent on behalf of a chat or channel
type SenderChat struct {
	ID        int64
	IsChannel bool
}

// Forward describes the origin of a forwarded message
type Forward struct {
	Kind ForwardKind
	// FromBot is known only for user origins
	FromBot bool
}

// Entity is a formatted span with its text already resolved
type Entity struct {
	Kind  EntityKind
	Value string
	// URL is set for text_link entities
	URL string
}

// SenderID returns the sending user's id, nil for anonymous or channel senders
func (m *Message) SenderID() *int64 {
	if m.From == nil {
		return nil
	}
	id := m.From.ID
	return &id
}

// Body returns the text or, for media, the caption
func (m *Message) Body() string {
	if m.Text != "" {
		return m.Text
	}
	return m.Caption
}

// EntitiesOf returns the entities of the given kinds in message order
func (m *Message) EntitiesOf(kinds ...EntityKind) []Entity {
	var out []Entity
	for _, e := range m.Entities {
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Links returns every link target: visible URLs and the targets of text links
func (m *Message) Links() []string {
	var links []string
	for _, e := range m.EntitiesOf(EntityKindUrl, EntityKindTextLink) {
		link := e.Value
		if e.Kind == EntityKindTextLink {
			link = e.URL
		}
		link = strings.TrimSpace(link)
		if link != "" {
			links = append(links, link)
		}
	}
	return links
}
