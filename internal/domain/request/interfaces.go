package request

import (
	"context"

	"shareit/internal/domain"
)

// RequestRepository defines the interface for item request storage
type RequestRepository interface {
	Create(ctx context.Context, r *domain.ItemRequest) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	FindOthers(ctx context.Context, requesterID int64, page domain.Page) ([]domain.ItemRequest, error)
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
