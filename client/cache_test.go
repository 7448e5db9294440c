package client

import (
	"testing"
	"time"

	"equipment-tracker/feature/tracker/models"

	"github.com/stretchr/testify/assert"
)

func seededCache() *Cache {
	c := NewCache()
	c.setLevel("O2 Generator", clamp(models.DeviceLevel{Total: 5}))
	c.setLevel("Nebulizer", clamp(models.DeviceLevel{Total: 2}))
	return c
}

func TestClone_IsDeep(t *testing.T) {
	c := seededCache()
	c.Transactions = []models.Transaction{{Row: 2, Device: "O2 Generator", Status: models.StatusDelivered}}

	clone := c.Clone()
	assert.Equal(t, c, clone)

	clone.setLevel("O2 Generator", models.DeviceLevel{Total: 99})
	clone.Transactions[0].Status = models.StatusReceived

	assert.Equal(t, 5, c.Data["O2 Generator"].Total, "mutating the clone must not touch the original")
	assert.Equal(t, models.StatusDelivered, c.Transactions[0].Status)
}

func TestApplyLoan(t *testing.T) {
	c := seededCache()

	c.applyLoan(models.Transaction{
		Timestamp: time.Now(),
		Device:    "O2 Generator",
		Status:    models.StatusDelivered,
	})

	assert.Equal(t, 1, c.Data["O2 Generator"].Rented)
	assert.Equal(t, 4, c.Data["O2 Generator"].Available)
	assert.Len(t, c.Transactions, 1)
	assert.Equal(t, PendingRow, c.Transactions[0].Row)
	assert.False(t, Assigned(c.Transactions[0].Row))

	// The ordered list mirrors the map.
	assert.Equal(t, 4, c.InventoryList[0].Available)
}

func TestApplyLoan_UnknownDeviceOnlyListed(t *testing.T) {
	c := seededCache()

	c.applyLoan(models.Transaction{Device: "Wheelchair", Status: models.StatusDelivered})

	assert.Len(t, c.Transactions, 1)
	assert.NotContains(t, c.Data, "Wheelchair")
}

func TestApplyTotal(t *testing.T) {
	c := seededCache()
	c.applyLoan(models.Transaction{Device: "O2 Generator", Status: models.StatusDelivered})

	c.applyTotal("O2 Generator", 10)
	assert.Equal(t, 10, c.Data["O2 Generator"].Total)
	assert.Equal(t, 9, c.Data["O2 Generator"].Available, "rented survives a total edit")

	// Clamped at zero when the total drops below outstanding rentals.
	c.applyTotal("O2 Generator", 0)
	assert.Equal(t, 0, c.Data["O2 Generator"].Available)

	// Unseen devices get an entry with rented = 0.
	c.applyTotal("Hospital Bed", 3)
	assert.Equal(t, models.DeviceLevel{Total: 3, Rented: 0, Available: 3}, c.Data["Hospital Bed"])
	assert.Equal(t, "Hospital Bed", c.InventoryList[len(c.InventoryList)-1].Name)
}

func TestApplyReceived(t *testing.T) {
	c := seededCache()
	c.Transactions = []models.Transaction{
		{Row: 2, Device: "O2 Generator", Status: models.StatusDelivered},
	}
	level := c.Data["O2 Generator"]
	level.Rented = 1
	c.setLevel("O2 Generator", clamp(level))

	c.applyReceived(2)

	assert.Equal(t, models.StatusReceived, c.Transactions[0].Status)
	assert.Equal(t, 0, c.Data["O2 Generator"].Rented)
	assert.Equal(t, 5, c.Data["O2 Generator"].Available)

	// Receiving an already-received row changes nothing.
	c.applyReceived(2)
	assert.Equal(t, 0, c.Data["O2 Generator"].Rented)

	// An unknown row is a no-op; the authoritative pull will correct it.
	c.applyReceived(77)
	assert.Equal(t, 0, c.Data["O2 Generator"].Rented)
}
