package client

import (
	"context"
	"time"

	"equipment-tracker/feature/tracker/models"
)

// Loan is the payload for recording a new equipment loan.
type Loan struct {
	PatientName   string
	RecipientName string
	Relationship  string
	PatientID     string
	RecipientID   string
	Contact       string
	Area          string
	Diagnosis     string
	Device        string
	DeviceNumber  string
	Notes         string
	Status        string
	Type          string
}

// command captures one optimistic cycle: the local cache mutation and the
// matching remote commit.
type command struct {
	apply  func(*Cache)
	commit func(ctx context.Context) error
}

// run executes the sync protocol for one command:
//
//  1. snapshot the cache as the rollback point,
//  2. apply the optimistic mutation and render,
//  3. commit over the network,
//  4. on success replace the cache wholesale from an authoritative pull,
//  5. on commit failure restore the snapshot verbatim and re-render.
//
// A pull failure after a successful commit keeps the optimistic state; the
// cache converges on the next successful pull. No retry is attempted.
func (c *Client) run(ctx context.Context, cmd command) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.cache.Clone()
	cmd.apply(c.cache)
	c.render(c.cache)

	if err := cmd.commit(ctx); err != nil {
		c.cache = snapshot
		c.render(c.cache)
		return err
	}

	fresh, err := c.pull(ctx)
	if err != nil {
		return err
	}
	c.cache = fresh
	c.render(c.cache)
	return nil
}

// AddLoan records a new loan: the cache immediately reflects the pending
// transaction and adjusted rented count, then the server confirms. The
// pending transaction carries no usable row until the authoritative pull
// assigns one.
func (c *Client) AddLoan(ctx context.Context, loan Loan) error {
	tx := models.Transaction{
		Row:           PendingRow,
		Timestamp:     time.Now(),
		PatientName:   loan.PatientName,
		RecipientName: loan.RecipientName,
		Relationship:  loan.Relationship,
		PatientID:     loan.PatientID,
		RecipientID:   loan.RecipientID,
		Contact:       loan.Contact,
		Area:          loan.Area,
		Diagnosis:     loan.Diagnosis,
		Device:        loan.Device,
		DeviceNumber:  loan.DeviceNumber,
		Notes:         loan.Notes,
		Status:        loan.Status,
		Type:          loan.Type,
	}

	payload := &models.WriteRequest{
		Action:        models.ActionAddTransaction,
		PatientName:   loan.PatientName,
		RecipientName: loan.RecipientName,
		Relationship:  loan.Relationship,
		PatientID:     loan.PatientID,
		RecipientID:   loan.RecipientID,
		Contact:       loan.Contact,
		Area:          loan.Area,
		Diagnosis:     loan.Diagnosis,
		Device:        loan.Device,
		DeviceNumber:  loan.DeviceNumber,
		Notes:         loan.Notes,
		Status:        loan.Status,
		Type:          loan.Type,
	}

	return c.run(ctx, command{
		apply:  func(cache *Cache) { cache.applyLoan(tx) },
		commit: func(ctx context.Context) error { return c.post(ctx, payload) },
	})
}

// SetTotal overwrites a device's total stock.
func (c *Client) SetTotal(ctx context.Context, device string, total int) error {
	payload := &models.WriteRequest{
		Action:   models.ActionUpdateInventory,
		Device:   device,
		NewTotal: total,
	}

	return c.run(ctx, command{
		apply:  func(cache *Cache) { cache.applyTotal(device, total) },
		commit: func(ctx context.Context) error { return c.post(ctx, payload) },
	})
}

// MarkReceived transitions the transaction at the given row to Received.
// A pending row is refused with ErrNotSynced: the record has no server
// identity yet, and acting on it would race the next pull.
func (c *Client) MarkReceived(ctx context.Context, row int) error {
	if !Assigned(row) {
		return ErrNotSynced
	}

	payload := &models.WriteRequest{
		Action: models.ActionUpdateStatus,
		Row:    row,
		Status: models.StatusReceived,
	}

	return c.run(ctx, command{
		apply:  func(cache *Cache) { cache.applyReceived(row) },
		commit: func(ctx context.Context) error { return c.post(ctx, payload) },
	})
}
