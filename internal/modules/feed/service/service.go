package service

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/chat-moderator/internal/modules/feed/domain"
	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/samber/oops"
)

// RecordLister returns a chat's most recent punishment records, newest first
type RecordLister interface {
	ListRecent(ctx context.Context, chatID int64, limit int) ([]punishment.Record, error)
}

// Service handles audit feed generation
type Service struct {
	records RecordLister
}

// New creates a new feed service
func New(records RecordLister) *Service {
	return &Service{records: records}
}

// GenerateFeed builds an RSS feed of the chat's latest punishment records
func (s *Service) GenerateFeed(ctx context.Context, chatID int64, baseURL string) (*feeds.Feed, error) {
	records, err := s.records.ListRecent(ctx, chatID, domain.DefaultItems)
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to get punishment records").Wrap(err)
	}

	cfg := domain.FeedConfig{
		ChatID: chatID,
		Title:  fmt.Sprintf("Moderation log for chat %d", chatID),
		Link:   fmt.Sprintf("%s/audit/%d", baseURL, chatID),
	}

	feed := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: cfg.Link},
		Description: fmt.Sprintf("Punishments applied in chat %d", chatID),
		Created:     time.Now(),
	}
	if len(records) > 0 {
		feed.Updated = records[0].CreatedAt
	}

	feed.Items = make([]*feeds.Item, 0, len(records))
	for i := range records {
		feed.Items = append(feed.Items, recordToFeedItem(&records[i], cfg.Link))
	}
	return feed, nil
}

func recordToFeedItem(r *punishment.Record, link string) *feeds.Item {
	title := fmt.Sprintf("%s user %d", r.Action, r.UserID)
	if !r.Success {
		title += " (failed)"
	}

	description := fmt.Sprintf("Source: %s, issued by %d", r.Source, r.IssuedByID)
	if r.DurationSeconds != nil {
		description += fmt.Sprintf(", for %s", time.Duration(*r.DurationSeconds)*time.Second)
	}
	if r.Reason != nil && *r.Reason != "" {
		description += "\nReason: " + *r.Reason
	}

	content := fmt.Sprintf("<p>%s</p>", html.EscapeString(description))
	if r.MessageText != nil && *r.MessageText != "" {
		content += fmt.Sprintf("<blockquote>%s</blockquote>", html.EscapeString(truncate(*r.MessageText, 200)))
	}

	return &feeds.Item{
		Title:       title,
		Link:        &feeds.Link{Href: link},
		Description: description,
		Content:     content,
		Created:     r.CreatedAt,
		Id:          r.ID,
	}
}

// truncate cuts s to maxLen code points
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
