package item

import (
	"time"

	"shareit/internal/domain"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required" validate:"required,max=255"`
	Description string `json:"description" binding:"required" validate:"required,max=1000"`
	Available   *bool  `json:"available" binding:"required" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

// UpdateItemRequest is a partial update: nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1,max=1000"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required" validate:"required,max=2000"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Available   bool                 `json:"available"`
	RequestID   *int64               `json:"requestId,omitempty"`
	LastBooking *domain.BookingShort `json:"lastBooking"`
	NextBooking *domain.BookingShort `json:"nextBooking"`
	Comments    []CommentView        `json:"comments"`
}

func ToCommentView(c *domain.Comment) CommentView {
	v := CommentView{ID: c.ID, Text: c.Text, Created: c.CreatedAt.UTC()}
	if c.Author != nil {
		v.AuthorName = c.Author.Name
	}
	return v
}

func toView(it *domain.Item) ItemView {
	return ItemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		Comments:    []CommentView{},
	}
}
