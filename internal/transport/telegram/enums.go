//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package telegram

// CallbackAction is the undo operation behind a log channel button
// ENUM(unmute,unban,unwarn)
type CallbackAction string
