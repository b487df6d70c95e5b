package booking

import (
	"context"
	"time"

	"shareit/internal/domain"
)

// Role tells the store whose bookings a list query is about.
type Role int

const (
	RoleBooker Role = iota + 1
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleBooker:
		return "booker"
	case RoleOwner:
		return "owner"
	}
	return "unknown"
}

// Scope restricts a list query to the bookings a user made (RoleBooker) or
// the bookings of the items a user owns (RoleOwner).
type Scope struct {
	Role   Role
	UserID int64
}

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// Decide moves a WAITING booking to status. It reports false when the
	// booking was no longer WAITING at write time.
	Decide(ctx context.Context, id int64, status domain.BookingStatus) (bool, error)

	FindAll(ctx context.Context, scope Scope, page domain.Page) ([]domain.Booking, error)
	FindCurrent(ctx context.Context, scope Scope, now time.Time, page domain.Page) ([]domain.Booking, error)
	FindPast(ctx context.Context, scope Scope, now time.Time, page domain.Page) ([]domain.Booking, error)
	FindFuture(ctx context.Context, scope Scope, now time.Time, page domain.Page) ([]domain.Booking, error)
	FindByStatus(ctx context.Context, scope Scope, status domain.BookingStatus, page domain.Page) ([]domain.Booking, error)

	// LastApproved and NextApproved return nil, nil when nothing matches.
	LastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
	NextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
	HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

// ItemCatalog is the read-only view of items the engine needs.
type ItemCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// UserDirectory is the read-only view of users the engine needs.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
