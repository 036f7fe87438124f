//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// PunishmentType is the action applied to an offender
// ENUM(nothing,warn,mute,ban,kick)
type PunishmentType string

// ActionType is what a punishment record documents, including inverse actions
// ENUM(nothing,warn,mute,ban,kick,unwarn,unmute,unban)
type ActionType string

// Source tells who initiated an action
// ENUM(manual,automatic,threshold)
type Source string
