package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	"shareit/internal/clock"
	"shareit/internal/domain"
)

// Service is the booking lifecycle engine.
type Service struct {
	bookings BookingRepository
	items    ItemCatalog
	users    UserDirectory
	clock    clock.Clock
	log      logrus.FieldLogger
}

func NewService(bookings BookingRepository, items ItemCatalog, users UserDirectory, clk clock.Clock, log logrus.FieldLogger) *Service {
	return &Service{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
		log:      log,
	}
}

// Add creates a WAITING booking of req.ItemID for bookerID.
func (s *Service) Add(ctx context.Context, req CreateBookingRequest, bookerID int64) (*domain.Booking, error) {
	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, domain.Errorf(domain.ErrNotAvailable, "Item %d is not available for booking", item.ID)
	}
	if item.OwnerID == bookerID {
		return nil, domain.Errorf(domain.ErrForbidden, "Item can not be booked by owner.")
	}

	start, end := req.Start.UTC(), req.End.UTC()
	if !end.After(start) {
		return nil, domain.Errorf(domain.ErrValidation, "End of booking must be after start.")
	}
	if !start.After(s.clock.Now()) {
		return nil, domain.Errorf(domain.ErrValidation, "Start of booking must be in the future.")
	}

	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		StartTime: start,
		EndTime:   end,
		ItemID:    item.ID,
		BookerID:  booker.ID,
		Status:    domain.BookingWaiting,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	b.Item = item
	b.Booker = booker

	s.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"item_id":    item.ID,
		"booker_id":  booker.ID,
	}).Info("booking created")
	return b, nil
}

// Approve records the owner's one-time decision on a WAITING booking.
func (s *Service) Approve(ctx context.Context, bookingID int64, approved bool, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Item == nil || b.Item.OwnerID != userID {
		return nil, domain.Errorf(domain.ErrForbidden, "Booking with id %d was not found.", bookingID)
	}
	if b.Status != domain.BookingWaiting {
		return nil, domain.Errorf(domain.ErrNotAvailable, "Item %d is not waiting to be approved.", b.ItemID)
	}

	status := domain.BookingRejected
	if approved {
		status = domain.BookingApproved
	}

	ok, err := s.bookings.Decide(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race against a concurrent decision.
		return nil, domain.Errorf(domain.ErrNotAvailable, "Item %d is not waiting to be approved.", b.ItemID)
	}
	b.Status = status

	s.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"owner_id":   userID,
		"status":     status,
	}).Info("booking decided")
	return b, nil
}

// GetByID returns the booking if userID is its booker or the item's owner.
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID == userID {
		return b, nil
	}
	if b.Item != nil && b.Item.OwnerID == userID {
		return b, nil
	}
	return nil, domain.Errorf(domain.ErrForbidden, "Booking with id %d was not found.", bookingID)
}

func (s *Service) GetAllByBooker(ctx context.Context, bookerID int64, state domain.RequestState, page domain.Page) ([]domain.Booking, error) {
	return s.list(ctx, Scope{Role: RoleBooker, UserID: bookerID}, state, page)
}

func (s *Service) GetAllByOwner(ctx context.Context, ownerID int64, state domain.RequestState, page domain.Page) ([]domain.Booking, error) {
	return s.list(ctx, Scope{Role: RoleOwner, UserID: ownerID}, state, page)
}

func (s *Service) list(ctx context.Context, scope Scope, state domain.RequestState, page domain.Page) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, scope.UserID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"role":    scope.Role.String(),
		"user_id": scope.UserID,
		"state":   state,
		"from":    page.From,
		"size":    page.Size,
	}).Debug("listing bookings")

	now := s.clock.Now()
	switch state {
	case domain.StateAll:
		return s.bookings.FindAll(ctx, scope, page)
	case domain.StateCurrent:
		return s.bookings.FindCurrent(ctx, scope, now, page)
	case domain.StatePast:
		return s.bookings.FindPast(ctx, scope, now, page)
	case domain.StateFuture:
		return s.bookings.FindFuture(ctx, scope, now, page)
	case domain.StateWaiting:
		return s.bookings.FindByStatus(ctx, scope, domain.BookingWaiting, page)
	case domain.StateRejected:
		return s.bookings.FindByStatus(ctx, scope, domain.BookingRejected, page)
	case domain.StateUnsupported:
		return nil, domain.Errorf(domain.ErrNotSupportedStatus, "Unknown state: %s", domain.StateUnsupported)
	}
	return nil, domain.Errorf(domain.ErrNotSupportedStatus, "Unknown state: %s", state)
}

// Summary returns the last and next approved bookings of item. Both are nil
// unless viewerID owns the item.
func (s *Service) Summary(ctx context.Context, item *domain.Item, viewerID int64) (last, next *domain.BookingShort, err error) {
	if item.OwnerID != viewerID {
		return nil, nil, nil
	}
	now := s.clock.Now()

	lb, err := s.bookings.LastApproved(ctx, item.ID, now)
	if err != nil {
		return nil, nil, err
	}
	nb, err := s.bookings.NextApproved(ctx, item.ID, now)
	if err != nil {
		return nil, nil, err
	}
	return lb.Short(), nb.Short(), nil
}

// HasCompletedBooking reports whether bookerID has a finished approved booking of itemID.
func (s *Service) HasCompletedBooking(ctx context.Context, bookerID, itemID int64) (bool, error) {
	return s.bookings.HasFinishedApproved(ctx, bookerID, itemID, s.clock.Now())
}
