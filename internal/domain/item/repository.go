package item

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shareit/internal/database"
	"shareit/internal/domain"
)

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(it).Error
	if database.IsIntegrityViolation(err) {
		return domain.Errorf(domain.ErrNotSaved, "Item %s was not saved.", it.Name)
	}
	return err
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(it).Error
	if database.IsIntegrityViolation(err) {
		return domain.Errorf(domain.ErrNotSaved, "Item %d was not updated.", it.ID)
	}
	return err
}

// Delete removes the item together with its comments. Items that were ever
// booked stay: booking history is never deleted.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booked int64
		if err := tx.Model(&domain.Booking{}).Where("item_id = ?", id).Count(&booked).Error; err != nil {
			return err
		}
		if booked > 0 {
			return domain.Errorf(domain.ErrConflict, "Item %d has bookings and can not be deleted.", id)
		}
		if err := tx.Where("item_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.Errorf(domain.ErrNotFound, "Item with id %d was not found.", id)
		}
		return nil
	})
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	err := r.db.WithContext(ctx).First(&it, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "Item with id %d was not found.", id)
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"

	var items []domain.Item
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where("(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\')", pattern, pattern).
		Order("id").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) CreateComment(ctx context.Context, c *domain.Comment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
	if database.IsIntegrityViolation(err) {
		return domain.Errorf(domain.ErrNotSaved, "Comment was not saved.")
	}
	return err
}

func (r *itemRepository) LatestComments(ctx context.Context, itemID int64, limit int) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
