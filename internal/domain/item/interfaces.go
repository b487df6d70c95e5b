package item

import (
	"context"

	"shareit/internal/domain"
)

// ItemRepository defines the interface for item and comment storage
type ItemRepository interface {
	Create(ctx context.Context, it *domain.Item) error
	Update(ctx context.Context, it *domain.Item) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.Item, error)
	// Search matches text against name and description of available items.
	Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error)

	CreateComment(ctx context.Context, c *domain.Comment) error
	LatestComments(ctx context.Context, itemID int64, limit int) ([]domain.Comment, error)
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type RequestLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
}

// BookingSummarizer is the part of the booking engine item views depend on.
type BookingSummarizer interface {
	Summary(ctx context.Context, item *domain.Item, viewerID int64) (last, next *domain.BookingShort, err error)
	HasCompletedBooking(ctx context.Context, bookerID, itemID int64) (bool, error)
}
