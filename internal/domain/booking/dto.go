package booking

import (
	"time"

	"shareit/internal/domain"
)

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required" validate:"required,gt=0"`
	Start  time.Time `json:"start" binding:"required" validate:"required,future"`
	End    time.Time `json:"end" binding:"required" validate:"required,future,gtfield=Start"`
}

type ItemShort struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type BookerShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingView is the booking as returned over the wire.
type BookingView struct {
	ID     int64                `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status domain.BookingStatus `json:"status"`
	Item   *ItemShort           `json:"item,omitempty"`
	Booker *BookerShort         `json:"booker,omitempty"`
}

func ToView(b *domain.Booking) BookingView {
	v := BookingView{
		ID:     b.ID,
		Start:  b.StartTime.UTC(),
		End:    b.EndTime.UTC(),
		Status: b.Status,
	}
	if b.Item != nil {
		v.Item = &ItemShort{
			ID:          b.Item.ID,
			Name:        b.Item.Name,
			Description: b.Item.Description,
			Available:   b.Item.Available,
			RequestID:   b.Item.RequestID,
		}
	}
	if b.Booker != nil {
		v.Booker = &BookerShort{ID: b.Booker.ID, Name: b.Booker.Name}
	}
	return v
}

func ToViews(bs []domain.Booking) []BookingView {
	out := make([]BookingView, 0, len(bs))
	for i := range bs {
		out = append(out, ToView(&bs[i]))
	}
	return out
}
