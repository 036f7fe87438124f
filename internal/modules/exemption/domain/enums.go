//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// ExemptionType tells what the exemption value identifies
// ENUM(user,bot)
type ExemptionType string
