//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MatchType selects how a pattern is compared with message text
// ENUM(exact,wildcard)
type MatchType string
