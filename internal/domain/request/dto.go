package request

import (
	"time"

	"shareit/internal/domain"
)

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required" validate:"required,max=1000"`
}

type RequestedItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId"`
}

type RequestView struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	RequesterID int64           `json:"requesterId"`
	Created     time.Time       `json:"created"`
	Items       []RequestedItem `json:"items"`
}

func ToView(r *domain.ItemRequest) RequestView {
	v := RequestView{
		ID:          r.ID,
		Description: r.Description,
		RequesterID: r.RequesterID,
		Created:     r.CreatedAt.UTC(),
		Items:       make([]RequestedItem, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		v.Items = append(v.Items, RequestedItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   r.ID,
		})
	}
	return v
}

func ToViews(rs []domain.ItemRequest) []RequestView {
	out := make([]RequestView, 0, len(rs))
	for i := range rs {
		out = append(out, ToView(&rs[i]))
	}
	return out
}
