package domain

import (
	"strings"
	"time"
)

// Category returns the display group of a lock type
func (x LockType) Category() LockCategory {
	switch x {
	case LockTypePhoto, LockTypeVideo, LockTypeAudio, LockTypeVoice, LockTypeDocument,
		LockTypeSticker, LockTypeAnimation, LockTypeVideonote, LockTypeContact,
		LockTypeLocation, LockTypeVenue, LockTypePoll, LockTypeGame, LockTypeDice:
		return LockCategoryContent
	case LockTypeForward, LockTypeForwarduser, LockTypeForwardchannel:
		return LockCategoryForward
	case LockTypeUrl, LockTypeInvite:
		return LockCategoryUrl
	case LockTypeText, LockTypeRtl, LockTypeCommands:
		return LockCategoryText
	case LockTypeMention, LockTypeHashtag, LockTypeCashtag, LockTypeEmail,
		LockTypePhone, LockTypeSpoiler, LockTypeCustomemoji:
		return LockCategoryEntity
	default:
		return LockCategoryOther
	}
}

// LockConfig is the state of one lock in a chat. A missing lock is unlocked.
type LockConfig struct {
	Locked bool    `json:"locked"`
	Reason *string `json:"reason,omitempty"`
}

// ChatLocks stores every lock of a chat as one JSON document
type ChatLocks struct {
	ChatID    int64  `gorm:"primaryKey;autoIncrement:false"`
	LocksJSON string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName returns the database table name for ChatLocks.
func (ChatLocks) TableName() string { return "chat_locks" }

// AllowlistEntry excludes a URL, domain or command from lock enforcement
type AllowlistEntry struct {
	ID            uint          `json:"id"      gorm:"primaryKey"`
	ChatID        int64         `json:"chat_id" gorm:"not null;uniqueIndex:idx_allowlist_unique,priority:1"`
	AllowlistType AllowlistType `json:"type"    gorm:"type:varchar(16);not null;uniqueIndex:idx_allowlist_unique,priority:2"`
	Pattern       string        `json:"pattern" gorm:"type:varchar(255);not null;uniqueIndex:idx_allowlist_unique,priority:3"`
	CreatedAt     time.Time     `json:"created_at"`
}

// TableName returns the database table name for AllowlistEntry.
func (AllowlistEntry) TableName() string { return "lock_allowlist" }

// DetectionContext carries a chat's allowlists into the detectors. It is
// built once per evaluated message and never stored.
type DetectionContext struct {
	ChatID              int64
	AllowlistedURLs     map[string]struct{}
	AllowlistedDomains  map[string]struct{}
	AllowlistedCommands map[string]struct{}
}

// NewDetectionContext builds a context from allowlist entries, normalizing
// each pattern the way detectors look them up
func NewDetectionContext(chatID int64, entries []AllowlistEntry) *DetectionContext {
	dc := &DetectionContext{
		ChatID:              chatID,
		AllowlistedURLs:     make(map[string]struct{}),
		AllowlistedDomains:  make(map[string]struct{}),
		AllowlistedCommands: make(map[string]struct{}),
	}
	for _, e := range entries {
		switch e.AllowlistType {
		case AllowlistTypeUrl:
			dc.AllowlistedURLs[strings.ToLower(strings.TrimSpace(e.Pattern))] = struct{}{}
		case AllowlistTypeDomain:
			dc.AllowlistedDomains[NormalizeDomain(e.Pattern)] = struct{}{}
		case AllowlistTypeCommand:
			dc.AllowlistedCommands[NormalizeCommand(e.Pattern)] = struct{}{}
		}
	}
	return dc
}

// NormalizeDomain lower-cases a host and strips a scheme, path, port and
// leading "www." or "*."
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	if i := strings.Index(d, "://"); i >= 0 {
		d = d[i+3:]
	}
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	if i := strings.LastIndex(d, ":"); i >= 0 {
		d = d[:i]
	}
	d = strings.TrimPrefix(d, "*.")
	d = strings.TrimPrefix(d, "www.")
	return strings.TrimSuffix(d, ".")
}

// NormalizeCommand maps "/Start@MyBot", "start" and "/start" to "start"
func NormalizeCommand(command string) string {
	c := strings.ToLower(strings.TrimSpace(command))
	c = strings.TrimPrefix(c, "/")
	if i := strings.Index(c, "@"); i >= 0 {
		c = c[:i]
	}
	return c
}

// Violation is the first lock a message broke
type Violation struct {
	LockType LockType
	Reason   *string
}
