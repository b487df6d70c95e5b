package domain

import "time"

type Item struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:1000;not null"`
	Available   bool      `json:"available" gorm:"not null"`
	OwnerID     int64     `json:"owner_id" gorm:"not null;index"`
	RequestID   *int64    `json:"request_id,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:2000;not null"`
	ItemID    int64     `json:"item_id" gorm:"not null;index"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
