package store

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rentscope/server/internal/models"
)

const (
	maxInsertRetries = 3
	retryDelay       = 2 * time.Second
)

// Listing is the sqlite row shape written by the import tool. Values are
// stored verbatim as text; validation and typing happen once, at snapshot
// build, regardless of which source the server reads from.
type Listing struct {
	ID             uint   `gorm:"primaryKey"`
	State          string `gorm:"column:state"`
	District       string `gorm:"column:district"`
	PropertyType   string `gorm:"column:property_type"`
	RentPrice      string `gorm:"column:rent_price"`
	FurnishingType string `gorm:"column:furnishing_type"`
	PropertySize   string `gorm:"column:property_size"`
	BedroomCount   string `gorm:"column:bedroom_count"`
	BathroomCount  string `gorm:"column:bathroom_count"`
	ExtractDate    string `gorm:"column:extract_date"`
	Latitude       string `gorm:"column:latitude"`
	Longitude      string `gorm:"column:longitude"`
}

func (Listing) TableName() string {
	return "listings"
}

// FromRaw converts a source row into its sqlite representation.
func FromRaw(r models.RawListing) Listing {
	return Listing{
		State:          r.State,
		District:       r.District,
		PropertyType:   r.PropertyType,
		RentPrice:      r.RentPrice,
		FurnishingType: r.FurnishingType,
		PropertySize:   r.PropertySize,
		BedroomCount:   r.BedroomCount,
		BathroomCount:  r.BathroomCount,
		ExtractDate:    r.ExtractDate,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}

// Store writes listings into the sqlite database the server's sqlite source
// reads from.
type Store struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func Open(path string, logger *logrus.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}

	if err := db.AutoMigrate(&Listing{}); err != nil {
		return nil, fmt.Errorf("failed to migrate listings table: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Reset drops previously imported listings so an import replaces the table.
func (s *Store) Reset() error {
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Listing{}).Error; err != nil {
		return fmt.Errorf("failed to clear listings table: %w", err)
	}
	return nil
}

// InsertBatch writes one batch transactionally, retrying a bounded number of
// times before giving up.
func (s *Store) InsertBatch(batch []Listing) error {
	var err error
	for attempt := 0; attempt <= maxInsertRetries; attempt++ {
		if attempt > 0 {
			s.logger.Infof("Retrying batch insert, attempt %d of %d", attempt, maxInsertRetries)
			time.Sleep(retryDelay)
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("failed to insert listings batch: %w", err)
			}
			return nil
		})

		if err == nil {
			return nil
		}
		s.logger.Errorf("Batch insert failed: %v", err)
	}

	return fmt.Errorf("failed to insert batch after %d attempts: %w", maxInsertRetries, err)
}

// Count returns the number of stored listings.
func (s *Store) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&Listing{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
