package tracker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"equipment-tracker/core/storage"
	"equipment-tracker/feature/tracker/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ReceiptArchive renders a plain-text delivery receipt for each recorded
// loan and stores it in object storage. Archiving is best-effort: callers
// log failures and carry on, the loan itself is already persisted.
type ReceiptArchive struct {
	client storage.Client
	bucket string
	prefix string
}

// NewReceiptArchive creates a receipt archive, creating the bucket when it
// does not exist yet.
func NewReceiptArchive(ctx context.Context, client storage.Client, bucket, prefix string) (*ReceiptArchive, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check receipt bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create receipt bucket: %w", err)
		}
	}
	return &ReceiptArchive{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

// Save renders and uploads the receipt for one transaction.
func (a *ReceiptArchive) Save(ctx context.Context, rec models.TransactionRecord) error {
	name := fmt.Sprintf("%s/%s-%s.txt",
		a.prefix,
		rec.Timestamp.Format("20060102T150405"),
		uuid.NewString()[:8],
	)

	body := renderReceipt(rec)
	reader := strings.NewReader(body)

	_, err := a.client.PutObject(ctx, a.bucket, name, reader, int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to upload receipt %s: %w", name, err)
	}
	return nil
}

// List returns the object names of all archived receipts. The timestamped
// naming scheme makes lexical order chronological.
func (a *ReceiptArchive) List(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    a.prefix + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list receipts: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

// Fetch downloads one archived receipt by object name.
func (a *ReceiptArchive) Fetch(ctx context.Context, name string) (string, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch receipt %s: %w", name, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read receipt %s: %w", name, err)
	}
	return string(body), nil
}

// Remove deletes one archived receipt by object name.
func (a *ReceiptArchive) Remove(ctx context.Context, name string) error {
	if err := a.client.RemoveObject(ctx, a.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove receipt %s: %w", name, err)
	}
	return nil
}

// renderReceipt produces the textual receipt with the fields the delivery
// form carries.
func renderReceipt(rec models.TransactionRecord) string {
	var b strings.Builder
	b.WriteString("EQUIPMENT DELIVERY RECEIPT\n")
	b.WriteString("==========================\n\n")
	writeField(&b, "Date", rec.Timestamp.Format("2006-01-02"))
	writeField(&b, "Patient", rec.PatientName)
	writeField(&b, "Patient ID", rec.PatientID)
	writeField(&b, "Recipient", rec.RecipientName)
	writeField(&b, "Recipient ID", rec.RecipientID)
	writeField(&b, "Relationship", rec.Relationship)
	writeField(&b, "Contact", rec.Contact)
	writeField(&b, "Area", rec.Area)
	writeField(&b, "Diagnosis", rec.Diagnosis)
	writeField(&b, "Device", rec.Device)
	writeField(&b, "Device Number", rec.DeviceNumber)
	writeField(&b, "Status", rec.Status)
	writeField(&b, "Notes", rec.Notes)
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(b, "%-14s %s\n", label+":", value)
}
