package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"equipment-tracker/core/gate"
	"equipment-tracker/core/utils"
	"equipment-tracker/feature/tracker/models"
	"equipment-tracker/feature/tracker/reconcile"

	"go.uber.org/zap"
)

// Service executes tracker operations against the record store. Every
// operation, read or write, passes through the store gate first and
// releases it on all exit paths.
type Service struct {
	store   *Store
	gate    *gate.Gate
	archive *ReceiptArchive
	logger  *zap.Logger
}

// NewService creates a new tracker service. The archive may be nil, in
// which case receipts are not archived.
func NewService(store *Store, g *gate.Gate, archive *ReceiptArchive, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		gate:    g,
		archive: archive,
		logger:  logger,
	}
}

// Read reconciles the current store state into a snapshot: per-device
// levels plus the most recent transactions, newest first.
func (s *Service) Read(ctx context.Context) (*reconcile.Snapshot, error) {
	release, _ := s.gate.Acquire(ctx)
	defer release()

	inventory, err := s.store.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	log, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return reconcile.Build(inventory, log), nil
}

// AddTransaction appends a new loan to the transaction log. Payload fields
// are copied verbatim; the timestamp is server-assigned. On success the
// receipt archive, when configured, stores a delivery receipt best-effort.
func (s *Service) AddTransaction(ctx context.Context, req *models.WriteRequest) error {
	rec := models.TransactionRecord{
		Timestamp:     time.Now(),
		PatientName:   req.PatientName,
		RecipientName: req.RecipientName,
		Relationship:  req.Relationship,
		PatientID:     req.PatientID,
		RecipientID:   req.RecipientID,
		Contact:       req.Contact,
		Area:          req.Area,
		Diagnosis:     req.Diagnosis,
		Device:        req.Device,
		DeviceNumber:  req.DeviceNumber,
		Notes:         req.Notes,
		Status:        req.Status,
		Type:          req.Type,
	}

	release, _ := s.gate.Acquire(ctx)
	err := s.store.AppendTransaction(ctx, &rec)
	release()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if s.archive != nil {
		// Archive failures are logged, never surfaced: the loan is saved.
		if err := s.archive.Save(ctx, rec); err != nil {
			s.logger.Warn("Receipt archive failed",
				zap.Int("row", rec.Row()),
				zap.Error(err),
			)
		}
	}

	return nil
}

// UpdateInventory overwrites a device's total stock, creating the inventory
// row for a previously unseen device. The total tolerates string and
// numeric JSON encodings.
func (s *Service) UpdateInventory(ctx context.Context, device string, newTotal any) error {
	total := utils.ToInt(newTotal)

	release, _ := s.gate.Acquire(ctx)
	defer release()

	if err := s.store.UpsertTotal(ctx, device, total); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// UpdateStatus overwrites the status of the transaction at the given sheet
// row. The row tolerates string and numeric JSON encodings; a missing or
// non-positive row is ErrInvalidArgument, a row past the end of the log is
// ErrNotFound.
func (s *Service) UpdateStatus(ctx context.Context, row any, status string) error {
	n := utils.ToInt(row)

	release, _ := s.gate.Acquire(ctx)
	defer release()

	err := s.store.UpdateStatus(ctx, n, status)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
