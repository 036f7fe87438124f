package errors

import "errors"

var (
	ErrMissingBotToken   = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrUnknownLockType   = errors.New("unknown lock type")
	ErrPatternExists     = errors.New("blocklist pattern already exists")
	ErrPatternNotFound   = errors.New("blocklist pattern not found")
	ErrInvalidPattern    = errors.New("invalid blocklist pattern")
	ErrExemptionNotFound = errors.New("exemption not found")
	ErrAllowlistNotFound = errors.New("allowlist entry not found")
	ErrAllowlistExists   = errors.New("allowlist entry already exists")
	ErrInvalidAllowlist  = errors.New("invalid allowlist entry")
	ErrExemptionExists   = errors.New("exemption already exists")
	ErrInvalidExemption  = errors.New("invalid exemption")
	ErrInvalidLogChannel = errors.New("log channel is not reachable")
	ErrInvalidSetting    = errors.New("invalid moderation setting")

	ErrUnknownPunishmentType = errors.New("unknown punishment type")
)
