package domain

import "time"

// ItemRequest is a wish for an item nobody has listed yet.
type ItemRequest struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"size:1000;not null"`
	RequesterID int64     `json:"requester_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created"`

	Items []Item `json:"items,omitempty" gorm:"foreignKey:RequestID"`
}
