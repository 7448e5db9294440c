package client

import "equipment-tracker/feature/tracker/models"

// PendingRow marks a locally created transaction the store has not yet
// assigned a sheet row. Real rows start at 2, so anything below that is not
// a usable identifier.
const PendingRow = 0

// Assigned reports whether a row reference resolves to a stored record.
func Assigned(row int) bool { return row >= 2 }

// Cache is the process-local mirror of the server's derived state. It is
// disposable: every successful pull rebuilds it wholesale from the read
// response, so optimistic adjustments are only ever a short-lived
// approximation.
type Cache struct {
	Data          map[string]models.DeviceLevel
	InventoryList []models.InventoryItem
	Transactions  []models.Transaction
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{Data: make(map[string]models.DeviceLevel)}
}

// Clone returns a deep copy, used as the rollback point of an optimistic
// cycle.
func (c *Cache) Clone() *Cache {
	clone := &Cache{
		Data:          make(map[string]models.DeviceLevel, len(c.Data)),
		InventoryList: make([]models.InventoryItem, len(c.InventoryList)),
		Transactions:  make([]models.Transaction, len(c.Transactions)),
	}
	for name, level := range c.Data {
		clone.Data[name] = level
	}
	copy(clone.InventoryList, c.InventoryList)
	copy(clone.Transactions, c.Transactions)
	return clone
}

// setLevel updates a device's level in both the map and the ordered list,
// appending a list entry for a device seen for the first time.
func (c *Cache) setLevel(device string, level models.DeviceLevel) {
	_, known := c.Data[device]
	c.Data[device] = level
	for i := range c.InventoryList {
		if c.InventoryList[i].Name == device {
			c.InventoryList[i].DeviceLevel = level
			return
		}
	}
	if !known {
		c.InventoryList = append(c.InventoryList, models.InventoryItem{Name: device, DeviceLevel: level})
	}
}

// clamp recomputes available from total and rented, floored at zero.
func clamp(level models.DeviceLevel) models.DeviceLevel {
	level.Available = level.Total - level.Rented
	if level.Available < 0 {
		level.Available = 0
	}
	return level
}

// applyLoan prepends a pending transaction and, for a known device with an
// outstanding status, increments its rented count. The same derivation
// rules the server uses, applied incrementally.
func (c *Cache) applyLoan(tx models.Transaction) {
	tx.Row = PendingRow
	c.Transactions = append([]models.Transaction{tx}, c.Transactions...)
	if len(c.Transactions) > maxTransactions {
		c.Transactions = c.Transactions[:maxTransactions]
	}

	if level, known := c.Data[tx.Device]; known && models.Outstanding(tx.Status) {
		level.Rented++
		c.setLevel(tx.Device, clamp(level))
	}
}

// applyTotal overwrites a device's total and recomputes its availability,
// creating the entry for a previously unseen device.
func (c *Cache) applyTotal(device string, total int) {
	level := c.Data[device]
	level.Total = total
	c.setLevel(device, clamp(level))
}

// applyReceived marks the transaction at the given row received and, when
// it was outstanding against a known device, returns the device to stock.
func (c *Cache) applyReceived(row int) {
	for i := range c.Transactions {
		if c.Transactions[i].Row != row {
			continue
		}
		tx := &c.Transactions[i]
		wasOutstanding := models.Outstanding(tx.Status)
		tx.Status = models.StatusReceived
		if level, known := c.Data[tx.Device]; known && wasOutstanding && level.Rented > 0 {
			level.Rented--
			c.setLevel(tx.Device, clamp(level))
		}
		return
	}
}
