package item

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"shareit/internal/domain"
)

// commentsShown caps the comments attached to an item view.
const commentsShown = 10

type Service struct {
	items    ItemRepository
	users    UserDirectory
	requests RequestLookup
	bookings BookingSummarizer
	log      logrus.FieldLogger
}

func NewService(items ItemRepository, users UserDirectory, requests RequestLookup, bookings BookingSummarizer, log logrus.FieldLogger) *Service {
	return &Service{
		items:    items,
		users:    users,
		requests: requests,
		bookings: bookings,
		log:      log,
	}
}

func (s *Service) Add(ctx context.Context, req CreateItemRequest, ownerID int64) (*domain.Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it := &domain.Item{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Available:   req.Available != nil && *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"item_id": it.ID, "owner_id": ownerID}).Info("item saved")
	return it, nil
}

func (s *Service) Update(ctx context.Context, itemID, ownerID int64, req UpdateItemRequest) (*domain.Item, error) {
	it, err := s.owned(ctx, itemID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		it.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		it.Description = strings.TrimSpace(*req.Description)
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}
	s.log.WithField("item_id", it.ID).Info("item updated")
	return it, nil
}

func (s *Service) Delete(ctx context.Context, itemID, ownerID int64) error {
	if _, err := s.owned(ctx, itemID, ownerID); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}
	s.log.WithField("item_id", itemID).Info("item deleted")
	return nil
}

// GetByID returns the item view. Booking summary is filled only for the owner.
func (s *Service) GetByID(ctx context.Context, itemID, userID int64) (*ItemView, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, it, userID)
}

func (s *Service) GetAllByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]ItemView, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	items, err := s.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	out := make([]ItemView, 0, len(items))
	for i := range items {
		v, err := s.view(ctx, &items[i], ownerID)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// Search returns available items whose name or description contains text.
// Blank text finds nothing.
func (s *Service) Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Item{}, nil
	}
	return s.items.Search(ctx, text, page)
}

// AddComment lets a former renter review the item.
func (s *Service) AddComment(ctx context.Context, itemID, authorID int64, req CreateCommentRequest) (*domain.Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	done, err := s.bookings.HasCompletedBooking(ctx, authorID, itemID)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, domain.Errorf(domain.ErrNotAvailable, "User %d cannot comment item %d they have never booked.", authorID, itemID)
	}

	c := &domain.Comment{
		Text:     strings.TrimSpace(req.Text),
		ItemID:   itemID,
		AuthorID: authorID,
	}
	if err := s.items.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	c.Author = author

	s.log.WithFields(logrus.Fields{"item_id": itemID, "author_id": authorID}).Info("comment added")
	return c, nil
}

func (s *Service) owned(ctx context.Context, itemID, ownerID int64) (*domain.Item, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, domain.Errorf(domain.ErrForbidden, "Item with id %d was not found.", itemID)
	}
	return it, nil
}

func (s *Service) view(ctx context.Context, it *domain.Item, viewerID int64) (*ItemView, error) {
	v := toView(it)

	last, next, err := s.bookings.Summary(ctx, it, viewerID)
	if err != nil {
		return nil, err
	}
	v.LastBooking, v.NextBooking = last, next

	comments, err := s.items.LatestComments(ctx, it.ID, commentsShown)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		v.Comments = append(v.Comments, ToCommentView(&comments[i]))
	}
	return &v, nil
}
