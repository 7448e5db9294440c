package reconcile

import "equipment-tracker/feature/tracker/models"

// MaxTransactions caps the transaction list returned in a snapshot.
const MaxTransactions = 50

// Snapshot is the derived view of the store at one instant: per-device
// stock levels plus the most recent transactions, newest first.
type Snapshot struct {
	Data         map[string]models.DeviceLevel
	List         []models.InventoryItem
	Transactions []models.Transaction
}

// Build derives current stock levels from inventory totals and the full
// transaction log. Rented counts every transaction whose device is a known
// inventory key and whose status is still outstanding; transactions for
// unknown devices appear in the list but never touch the inventory math.
// Available is clamped to zero. Build is a pure function of its inputs.
func Build(inventory []models.InventoryRecord, log []models.TransactionRecord) *Snapshot {
	data := make(map[string]models.DeviceLevel, len(inventory))
	order := make([]string, 0, len(inventory))
	for _, rec := range inventory {
		if rec.DeviceName == "" {
			continue
		}
		data[rec.DeviceName] = models.DeviceLevel{Total: rec.TotalStock}
		order = append(order, rec.DeviceName)
	}

	transactions := make([]models.Transaction, 0, len(log))
	for _, rec := range log {
		if level, known := data[rec.Device]; known && models.Outstanding(rec.Status) {
			level.Rented++
			data[rec.Device] = level
		}
		transactions = append(transactions, models.FromRecord(rec))
	}

	for name, level := range data {
		level.Available = level.Total - level.Rented
		if level.Available < 0 {
			level.Available = 0
		}
		data[name] = level
	}

	// Reverse chronological order, truncated to the most recent entries.
	for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	}
	if len(transactions) > MaxTransactions {
		transactions = transactions[:MaxTransactions]
	}

	list := make([]models.InventoryItem, 0, len(order))
	for _, name := range order {
		list = append(list, models.InventoryItem{Name: name, DeviceLevel: data[name]})
	}

	return &Snapshot{
		Data:         data,
		List:         list,
		Transactions: transactions,
	}
}
