package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"equipment-tracker/feature/tracker/models"

	"gorm.io/gorm"
)

// seedDevices is the inventory every fresh store starts with, at zero stock.
var seedDevices = []string{
	"O2 Generator",
	"Nebulizer",
	"Suction Machine",
	"Air Mattress",
	"Lymphatic Drainage Device",
	"Commode",
}

// Store persists inventory rows and the append-only transaction log.
// It owns the sheet-position mapping: the row identifiers exposed to the
// API are 1-based with row 1 reserved for the header, so a record's row is
// its primary key plus one.
type Store struct {
	db *gorm.DB
}

// NewStore migrates both tables and seeds the inventory with the default
// device list when it is empty.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.InventoryRecord{}, &models.TransactionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store tables: %w", err)
	}

	var count int64
	if err := db.Model(&models.InventoryRecord{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count inventory: %w", err)
	}
	if count == 0 {
		for _, name := range seedDevices {
			rec := models.InventoryRecord{DeviceName: name, TotalStock: 0}
			if err := db.Create(&rec).Error; err != nil {
				return nil, fmt.Errorf("failed to seed inventory: %w", err)
			}
		}
	}

	return &Store{db: db}, nil
}

// Inventory returns all inventory rows in sheet order.
func (s *Store) Inventory(ctx context.Context) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Transactions returns the full transaction log in chronological order.
func (s *Store) Transactions(ctx context.Context) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// AppendTransaction appends a new row to the transaction log. The store
// assigns the timestamp when the caller left it zero.
func (s *Store) AppendTransaction(ctx context.Context, rec *models.TransactionRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

// UpsertTotal overwrites the total stock for a device, creating the
// inventory row when the device has not been seen before.
func (s *Store) UpsertTotal(ctx context.Context, device string, total int) error {
	var rec models.InventoryRecord
	err := s.db.WithContext(ctx).First(&rec, "device_name = ?", device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.InventoryRecord{DeviceName: device, TotalStock: total}
		return s.db.WithContext(ctx).Create(&rec).Error
	}
	if err != nil {
		return err
	}
	rec.TotalStock = total
	return s.db.WithContext(ctx).Save(&rec).Error
}

// UpdateStatus overwrites the status field of the transaction at the given
// sheet row. Rows below 2 (the header and anything before it) are
// ErrInvalidArgument; rows past the end of the log are ErrNotFound. The
// update is last-write-wins and idempotent.
func (s *Store) UpdateStatus(ctx context.Context, row int, status string) error {
	if row < 2 {
		return fmt.Errorf("%w: invalid row index %d", ErrInvalidArgument, row)
	}

	var rec models.TransactionRecord
	err := s.db.WithContext(ctx).First(&rec, uint(row-1)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: row %d", ErrNotFound, row)
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&rec).Update("status", status).Error
}
