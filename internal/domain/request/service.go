package request

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"shareit/internal/domain"
)

type Service struct {
	requests RequestRepository
	users    UserDirectory
	log      logrus.FieldLogger
}

func NewService(requests RequestRepository, users UserDirectory, log logrus.FieldLogger) *Service {
	return &Service{requests: requests, users: users, log: log}
}

func (s *Service) Add(ctx context.Context, req CreateRequestRequest, requesterID int64) (*domain.ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}
	r := &domain.ItemRequest{
		Description: strings.TrimSpace(req.Description),
		RequesterID: requesterID,
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"request_id": r.ID, "requester_id": requesterID}).Info("item request saved")
	return r, nil
}

// Delete removes a request. Only its author may do that.
func (s *Service) Delete(ctx context.Context, requestID, userID int64) error {
	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if r.RequesterID != userID {
		return domain.Errorf(domain.ErrForbidden, "Request with id %d was not found.", requestID)
	}
	if err := s.requests.Delete(ctx, requestID); err != nil {
		return err
	}
	s.log.WithField("request_id", requestID).Info("item request deleted")
	return nil
}

func (s *Service) GetOwn(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.requests.FindByRequester(ctx, userID)
}

// GetAll pages through requests made by other users, newest first.
func (s *Service) GetAll(ctx context.Context, userID int64, page domain.Page) ([]domain.ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.requests.FindOthers(ctx, userID, page)
}

func (s *Service) GetByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.requests.GetByID(ctx, requestID)
}
