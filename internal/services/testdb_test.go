package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/iammeliaskhan/habit-tracker/internal/dates"
	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Profile{}, &models.Habit{}, &models.CheckIn{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := dates.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return day
}
