package models

import "time"

// Transaction status values. Delivered and "Not Received" both mean the
// device is out with a patient; Received means it is back in stock.
const (
	StatusDelivered   = "Delivered"
	StatusReceived    = "Received"
	StatusNotReceived = "Not Received"
)

// Outstanding reports whether a transaction with the given status still
// counts against the device's stock.
func Outstanding(status string) bool {
	return status == StatusDelivered || status == StatusNotReceived
}

// InventoryRecord is a row of the inventory table: one device and its total
// stock. Rented and available counts are derived, never stored.
type InventoryRecord struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	DeviceName string `gorm:"column:device_name;size:255;uniqueIndex" json:"name"`
	TotalStock int    `gorm:"column:total_stock" json:"total"`
}

// TableName maps the record to the inventory sheet.
func (InventoryRecord) TableName() string { return "inventory" }

// TransactionRecord is a row of the append-only transaction log. Once
// created, every field except Status is immutable.
type TransactionRecord struct {
	ID            uint      `gorm:"primaryKey"`
	Timestamp     time.Time `gorm:"column:timestamp"`
	PatientName   string    `gorm:"column:patient_name;size:255"`
	RecipientName string    `gorm:"column:device_recipient_name;size:255"`
	Relationship  string    `gorm:"column:relationship;size:255"`
	PatientID     string    `gorm:"column:patient_id;size:255"`
	RecipientID   string    `gorm:"column:recipient_id;size:255"`
	Contact       string    `gorm:"column:contact_number;size:255"`
	Area          string    `gorm:"column:area;size:255"`
	Diagnosis     string    `gorm:"column:diagnosis;size:255"`
	Device        string    `gorm:"column:device;size:255;index"`
	DeviceNumber  string    `gorm:"column:device_number;size:255"`
	Notes         string    `gorm:"column:notes"`
	Status        string    `gorm:"column:status;size:32"`
	Type          string    `gorm:"column:type;size:255"`
}

// TableName maps the record to the transaction sheet.
func (TransactionRecord) TableName() string { return "transactions" }

// Row returns the record's 1-based sheet position. Row 1 is the header, so
// data rows start at 2.
func (t TransactionRecord) Row() int { return int(t.ID) + 1 }

// DeviceLevel is the derived stock view for one device.
type DeviceLevel struct {
	Total     int `json:"total"`
	Rented    int `json:"rented"`
	Available int `json:"available"`
}

// InventoryItem is a DeviceLevel plus its device name, for the ordered list
// view of the read response.
type InventoryItem struct {
	Name string `json:"name"`
	DeviceLevel
}

// Transaction is the API-facing view of a TransactionRecord. Row is the
// stable identifier callers use to mark a device returned; a Row below 2
// marks a record the store has not assigned a position yet.
type Transaction struct {
	Row           int       `json:"row"`
	Timestamp     time.Time `json:"timestamp"`
	PatientName   string    `json:"patientName"`
	RecipientName string    `json:"recipientName"`
	Relationship  string    `json:"relationship"`
	PatientID     string    `json:"patientId"`
	RecipientID   string    `json:"recipientId"`
	Contact       string    `json:"contact"`
	Area          string    `json:"area"`
	Diagnosis     string    `json:"diagnosis"`
	Device        string    `json:"device"`
	DeviceNumber  string    `json:"deviceNumber"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
}

// FromRecord converts a stored record into its API view.
func FromRecord(rec TransactionRecord) Transaction {
	return Transaction{
		Row:           rec.Row(),
		Timestamp:     rec.Timestamp,
		PatientName:   rec.PatientName,
		RecipientName: rec.RecipientName,
		Relationship:  rec.Relationship,
		PatientID:     rec.PatientID,
		RecipientID:   rec.RecipientID,
		Contact:       rec.Contact,
		Area:          rec.Area,
		Diagnosis:     rec.Diagnosis,
		Device:        rec.Device,
		DeviceNumber:  rec.DeviceNumber,
		Notes:         rec.Notes,
		Status:        rec.Status,
		Type:          rec.Type,
	}
}

// ReadResponse is the body of the read endpoint.
type ReadResponse struct {
	Status        string                 `json:"status"`
	Data          map[string]DeviceLevel `json:"data"`
	InventoryList []InventoryItem        `json:"inventoryList"`
	Transactions  []Transaction          `json:"transactions"`
	Message       string                 `json:"message,omitempty"`
}

// WriteResponse is the body of the write endpoint.
type WriteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteRequest mirrors the action-tagged POST body. NewTotal and Row are
// untyped because callers send them as JSON numbers or strings; the service
// coerces them.
type WriteRequest struct {
	Action        string `json:"action"`
	PatientName   string `json:"patientName"`
	RecipientName string `json:"recipientName"`
	Relationship  string `json:"relationship"`
	PatientID     string `json:"patientId"`
	RecipientID   string `json:"recipientId"`
	Contact       string `json:"contact"`
	Area          string `json:"area"`
	Diagnosis     string `json:"diagnosis"`
	Device        string `json:"device"`
	DeviceNumber  string `json:"deviceNumber"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	NewTotal      any    `json:"newTotal"`
	Row           any    `json:"row"`
}

// Write actions recognized by the handler.
const (
	ActionAddTransaction  = "addTransaction"
	ActionUpdateInventory = "updateInventory"
	ActionUpdateStatus    = "updateStatus"
)
