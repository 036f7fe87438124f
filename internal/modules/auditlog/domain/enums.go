//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// ActionType identifies an audited moderation event
// ENUM(lock_enabled,lock_disabled,lock_warns,exemption_added,exemption_removed,allowlist_added,allowlist_removed,blocklist_added,blocklist_removed,message_deleted,warn,unwarn,mute,unmute,ban,unban,kick,nothing,log_channel,max_warnings,warning_ttl,threshold_action,blocklist_action)
type ActionType string
