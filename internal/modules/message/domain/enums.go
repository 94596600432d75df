//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// DeliveryOutcome represents the result of delivering an entry
// ENUM(sent,failed)
type DeliveryOutcome string
