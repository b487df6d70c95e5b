package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shareit/internal/database"
	"shareit/internal/domain"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
	if database.IsIntegrityViolation(err) {
		return domain.Errorf(domain.ErrNotSaved, "Booking was not saved.")
	}
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "Booking with id %d was not found.", id)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Decide is a compare-and-set on status: of two concurrent decisions only one
// can match "status = WAITING".
func (r *bookingRepository) Decide(ctx context.Context, id int64, status domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, domain.BookingWaiting).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if database.IsIntegrityViolation(tx.Error) {
		return false, domain.Errorf(domain.ErrNotSaved, "Booking was not approved.")
	}
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *bookingRepository) scoped(ctx context.Context, scope Scope) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("bookings.*").
		Preload("Item").
		Preload("Booker")

	switch scope.Role {
	case RoleOwner:
		q = q.Joins("JOIN items ON items.id = bookings.item_id").
			Where("items.owner_id = ?", scope.UserID)
	default:
		q = q.Where("bookings.booker_id = ?", scope.UserID)
	}
	return q
}

func (r *bookingRepository) find(q *gorm.DB, order string, page domain.Page) ([]domain.Booking, error) {
	var rows []domain.Booking
	err := q.Order(order).
		Order("bookings.id").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, scope Scope, page domain.Page) ([]domain.Booking, error) {
	return r.find(r.scoped(ctx, scope), "bookings.end_time DESC", page)
}

func (r *bookingRepository) FindCurrent(ctx context.Context, scope Scope, now time.Time, page domain.Page) ([]domain.Booking, error) {
	q := r.scoped(ctx, scope).
		Where("bookings.start_time <= ? AND bookings.end_time >= ?", now, now)
	return r.find(q, "bookings.start_time ASC", page)
}

func (r *bookingRepository) FindPast(ctx context.Context, scope Scope, now time.Time, page domain.Page) ([]domain.Booking, error) {
	q := r.scoped(ctx, scope).Where("bookings.end_time < ?", now)
	return r.find(q, "bookings.start_time DESC", page)
}

func (r *bookingRepository) FindFuture(ctx context.Context, scope Scope, now time.Time, page domain.Page) ([]domain.Booking, error) {
	q := r.scoped(ctx, scope).Where("bookings.start_time > ?", now)
	return r.find(q, "bookings.start_time DESC", page)
}

func (r *bookingRepository) FindByStatus(ctx context.Context, scope Scope, status domain.BookingStatus, page domain.Page) ([]domain.Booking, error) {
	q := r.scoped(ctx, scope).Where("bookings.status = ?", status)
	return r.find(q, "bookings.start_time DESC", page)
}

func (r *bookingRepository) LastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_time < ?", itemID, domain.BookingApproved, now).
		Order("start_time DESC")
	return first(q)
}

func (r *bookingRepository) NextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_time > ?", itemID, domain.BookingApproved, now).
		Order("start_time ASC")
	return first(q)
}

func (r *bookingRepository) HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_time < ?", bookerID, itemID, domain.BookingApproved, now).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func first(q *gorm.DB) (*domain.Booking, error) {
	var rows []domain.Booking
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
