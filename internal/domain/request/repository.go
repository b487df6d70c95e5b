package request

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shareit/internal/database"
	"shareit/internal/domain"
)

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error
	if database.IsIntegrityViolation(err) {
		return domain.Errorf(domain.ErrNotSaved, "Request was not saved.")
	}
	return err
}

// Delete detaches items listed against the request before removing it.
func (r *requestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Item{}).
			Where("request_id = ?", id).
			Update("request_id", nil).Error
		if err != nil {
			return err
		}
		res := tx.Delete(&domain.ItemRequest{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.Errorf(domain.ErrNotFound, "Request with id %d was not found.", id)
		}
		return nil
	})
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	var req domain.ItemRequest
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "Request with id %d was not found.", id)
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) FindByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	var reqs []domain.ItemRequest
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *requestRepository) FindOthers(ctx context.Context, requesterID int64, page domain.Page) ([]domain.ItemRequest, error) {
	var reqs []domain.ItemRequest
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("requester_id <> ?", requesterID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}
