package domain

import "time"

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingWaiting, BookingApproved, BookingRejected:
		return true
	}
	return false
}

type Booking struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	StartTime time.Time     `json:"start" gorm:"column:start_time;not null;index"`
	EndTime   time.Time     `json:"end" gorm:"column:end_time;not null;index"`
	ItemID    int64         `json:"item_id" gorm:"not null;index"`
	BookerID  int64         `json:"booker_id" gorm:"not null;index"`
	Status    BookingStatus `json:"status" gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Связи
	Item   *Item `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Booker *User `json:"booker,omitempty" gorm:"foreignKey:BookerID"`
}

// IsCurrent reports whether the booking window is open at now (bounds inclusive).
func (b *Booking) IsCurrent(now time.Time) bool {
	return !b.StartTime.After(now) && !b.EndTime.Before(now)
}

func (b *Booking) IsPast(now time.Time) bool {
	return b.EndTime.Before(now)
}

func (b *Booking) IsFuture(now time.Time) bool {
	return b.StartTime.After(now)
}

// BookingShort is the minimal projection shown on item views.
type BookingShort struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

func (b *Booking) Short() *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{ID: b.ID, BookerID: b.BookerID}
}
