package domain

// DefaultItems is how many punishment records a chat feed carries
const DefaultItems = 50

// FeedConfig describes one chat's audit feed
type FeedConfig struct {
	ChatID int64  `json:"chat_id"`
	Title  string `json:"title"`
	Link   string `json:"link"`
}
