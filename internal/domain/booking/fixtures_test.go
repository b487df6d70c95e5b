package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shareit/internal/database"
	"shareit/internal/domain"
)

var base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// dbLookup serves items and users straight from the test database.
type dbLookup struct{ db *gorm.DB }

type itemLookup dbLookup
type userLookup dbLookup

func (l itemLookup) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	err := l.db.WithContext(ctx).First(&it, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "Item with id %d was not found.", id)
	}
	return &it, err
}

func (l userLookup) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := l.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "User with id %d was not found.", id)
	}
	return &u, err
}

func seedUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedItem(t *testing.T, db *gorm.DB, owner *domain.User, available bool) *domain.Item {
	t.Helper()
	it := &domain.Item{Name: "Drill", Description: "cordless drill", Available: available, OwnerID: owner.ID}
	require.NoError(t, db.Create(it).Error)
	return it
}

func seedBooking(t *testing.T, db *gorm.DB, item *domain.Item, booker *domain.User, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		ItemID:    item.ID,
		BookerID:  booker.ID,
		Status:    status,
	}
	require.NoError(t, db.Omit("Item", "Booker").Create(b).Error)
	return b
}

func ids(bs []domain.Booking) []int64 {
	out := make([]int64, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}
