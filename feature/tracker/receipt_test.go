package tracker

import (
	"context"
	"io"
	"strings"
	"testing"

	"equipment-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestArchive(t *testing.T, client *mocks.Client) *ReceiptArchive {
	t.Helper()
	client.On("BucketExists", mock.Anything, "tracker").Return(true, nil)

	archive, err := NewReceiptArchive(context.Background(), client, "tracker", "receipts")
	assert.NoError(t, err)
	return archive
}

func receiptObjects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func TestReceiptArchive_List(t *testing.T) {
	mockClient := new(mocks.Client)
	archive := newTestArchive(t, mockClient)

	mockClient.On("ListObjects", mock.Anything, "tracker", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "receipts/" && opts.Recursive
	})).Return(receiptObjects(
		"receipts/20260101T080000-aaaa0000.txt",
		"receipts/20260102T090000-bbbb1111.txt",
	))

	names, err := archive.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"receipts/20260101T080000-aaaa0000.txt",
		"receipts/20260102T090000-bbbb1111.txt",
	}, names)
}

func TestReceiptArchive_ListSurfacesObjectErrors(t *testing.T) {
	mockClient := new(mocks.Client)
	archive := newTestArchive(t, mockClient)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "tracker", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	_, err := archive.List(context.Background())
	assert.Error(t, err)
}

func TestReceiptArchive_Fetch(t *testing.T) {
	mockClient := new(mocks.Client)
	archive := newTestArchive(t, mockClient)

	name := "receipts/20260101T080000-aaaa0000.txt"
	body := "EQUIPMENT DELIVERY RECEIPT\n"
	mockClient.On("GetObject", mock.Anything, "tracker", name, mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)

	got, err := archive.Fetch(context.Background(), name)
	assert.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestReceiptArchive_Remove(t *testing.T) {
	mockClient := new(mocks.Client)
	archive := newTestArchive(t, mockClient)

	name := "receipts/20260101T080000-aaaa0000.txt"
	mockClient.On("RemoveObject", mock.Anything, "tracker", name, mock.Anything).Return(nil)

	err := archive.Remove(context.Background(), name)
	assert.NoError(t, err)
	mockClient.AssertCalled(t, "RemoveObject", mock.Anything, "tracker", name, mock.Anything)
}
