package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("DB connection failed")
	}

	logrus.Info("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("AutoMigrate failed")
	}

	if err := seed(db, time.Now().UTC(), rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
		logrus.WithError(err).Fatal("seed failed")
	}
	logrus.Info("✅ Seed completed")
}

// seed wipes the tables and fills them with demo data relative to now.
func seed(db *gorm.DB, now time.Time, rnd *rand.Rand) error {
	// Cleanup old data (in safe order to avoid foreign key errors)
	logrus.Info("Cleaning old data...")
	for _, table := range []string{"comments", "bookings", "items", "item_requests", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clean %s: %w", table, err)
		}
	}

	// ================== USERS ==================
	logrus.Info("Creating users...")
	users := []domain.User{
		{Name: "Айгерим", Email: "owner@shareit.local"},
		{Name: "Данияр", Email: "renter@shareit.local"},
		{Name: "Мария", Email: "neighbour@shareit.local"},
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&users).Error
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	owner, renter, neighbour := users[0], users[1], users[2]

	// ================== REQUESTS ==================
	logrus.Info("Creating item requests...")
	wish := domain.ItemRequest{
		Description: "Нужна палатка на выходные",
		RequesterID: neighbour.ID,
		CreatedAt:   now.Add(-72 * time.Hour),
	}
	if err := db.Create(&wish).Error; err != nil {
		return fmt.Errorf("request: %w", err)
	}

	// ================== ITEMS ==================
	logrus.Info("Creating items...")
	items := []domain.Item{
		{Name: "Дрель", Description: "Аккумуляторная дрель 18V", Available: true, OwnerID: owner.ID},
		{Name: "Палатка", Description: "Двухместная палатка", Available: true, OwnerID: owner.ID, RequestID: &wish.ID},
		{Name: "Велосипед", Description: "Горный велосипед", Available: false, OwnerID: owner.ID},
		{Name: "Лестница", Description: "Алюминиевая стремянка", Available: true, OwnerID: renter.ID},
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("items: %w", err)
	}

	// ================== BOOKINGS ==================
	// one booking per temporal bucket so every state filter has something to show
	logrus.Info("Creating bookings...")
	hour := func(h int) time.Time { return now.Truncate(time.Hour).Add(time.Duration(h) * time.Hour) }
	bookings := []domain.Booking{
		{StartTime: hour(-96), EndTime: hour(-72), ItemID: items[0].ID, BookerID: renter.ID, Status: domain.BookingApproved},
		{StartTime: hour(-2), EndTime: hour(22), ItemID: items[1].ID, BookerID: renter.ID, Status: domain.BookingApproved},
		{StartTime: hour(48), EndTime: hour(72), ItemID: items[0].ID, BookerID: renter.ID, Status: domain.BookingApproved},
		{StartTime: hour(24 + rnd.Intn(24)), EndTime: hour(96), ItemID: items[1].ID, BookerID: neighbour.ID, Status: domain.BookingWaiting},
		{StartTime: hour(120), EndTime: hour(144), ItemID: items[0].ID, BookerID: neighbour.ID, Status: domain.BookingRejected},
		{StartTime: hour(30), EndTime: hour(33), ItemID: items[3].ID, BookerID: owner.ID, Status: domain.BookingWaiting},
	}
	if err := db.Omit(clause.Associations).Create(&bookings).Error; err != nil {
		return fmt.Errorf("bookings: %w", err)
	}

	// ================== COMMENTS ==================
	logrus.Info("Creating comments...")
	comment := domain.Comment{
		Text:     "Отличная дрель, всё работало",
		ItemID:   items[0].ID,
		AuthorID: renter.ID,
	}
	if err := db.Omit(clause.Associations).Create(&comment).Error; err != nil {
		return fmt.Errorf("comment: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":    len(users),
		"items":    len(items),
		"bookings": len(bookings),
	}).Info("Demo data created")
	return nil
}
