package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gift is a catalog item employees can be polled about. Gifts are shared
// across polls; a poll only references them through its options.
type Gift struct {
	GiftID      string          `json:"giftID" db:"gift_id"` // Primary Key (UUID)
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}
