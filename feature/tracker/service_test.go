package tracker

import (
	"context"
	"testing"

	"equipment-tracker/core/gate"
	"equipment-tracker/core/storage/mocks"
	"equipment-tracker/feature/tracker/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, archive *ReceiptArchive) *Service {
	t.Helper()
	store := newTestStore(t)
	g := gate.New(gate.Config{TimeoutSeconds: 1}, zap.NewNop())
	return NewService(store, g, archive, zap.NewNop())
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mockDB
}

func TestService_LoanLifecycle(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	// Seeded store starts at zero stock.
	err := svc.UpdateInventory(ctx, "O2 Generator", 5)
	assert.NoError(t, err)

	snapshot, err := svc.Read(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5, snapshot.Data["O2 Generator"].Available)
	assert.Equal(t, 0, snapshot.Data["O2 Generator"].Rented)

	// Record a loan: one unit leaves stock.
	err = svc.AddTransaction(ctx, &models.WriteRequest{
		PatientName: "Test Patient",
		Device:      "O2 Generator",
		Status:      models.StatusDelivered,
	})
	assert.NoError(t, err)

	snapshot, err = svc.Read(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, snapshot.Data["O2 Generator"].Rented)
	assert.Equal(t, 4, snapshot.Data["O2 Generator"].Available)
	assert.Len(t, snapshot.Transactions, 1)

	// Mark it received: the unit is back.
	row := snapshot.Transactions[0].Row
	err = svc.UpdateStatus(ctx, row, models.StatusReceived)
	assert.NoError(t, err)

	snapshot, err = svc.Read(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, snapshot.Data["O2 Generator"].Rented)
	assert.Equal(t, 5, snapshot.Data["O2 Generator"].Available)
}

func TestService_UpdateInventoryCoercesTotals(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	// Totals arrive as JSON numbers (float64) or strings.
	assert.NoError(t, svc.UpdateInventory(ctx, "Nebulizer", float64(7)))
	assert.NoError(t, svc.UpdateInventory(ctx, "Commode", "3"))

	snapshot, err := svc.Read(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 7, snapshot.Data["Nebulizer"].Total)
	assert.Equal(t, 3, snapshot.Data["Commode"].Total)
}

func TestService_UpdateInventoryUnseenDevice(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	err := svc.UpdateInventory(ctx, "Hospital Bed", 4)
	assert.NoError(t, err)

	snapshot, err := svc.Read(ctx)
	assert.NoError(t, err)
	level := snapshot.Data["Hospital Bed"]
	assert.Equal(t, 4, level.Total)
	assert.Equal(t, 0, level.Rented)
	assert.Equal(t, 4, level.Available)
}

func TestService_UpdateStatusErrors(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	t.Run("Missing Row", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, nil, models.StatusReceived)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Header Row", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, 1, models.StatusReceived)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Non-numeric Row", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, "garbage", models.StatusReceived)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Unknown Row", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, 500, models.StatusReceived)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("String Row Resolves", func(t *testing.T) {
		rec := models.TransactionRecord{Device: "O2 Generator", Status: models.StatusDelivered}
		assert.NoError(t, svc.store.AppendTransaction(ctx, &rec))

		err := svc.UpdateStatus(ctx, "2", models.StatusReceived)
		assert.NoError(t, err)
	})
}

func TestService_ReadStoreUnavailable(t *testing.T) {
	db, mockDB := setupMockDB(t)
	mockDB.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	store := &Store{db: db}
	g := gate.New(gate.Config{TimeoutSeconds: 1}, zap.NewNop())
	svc := NewService(store, g, nil, zap.NewNop())

	_, err := svc.Read(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestService_AddTransactionArchivesReceipt(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "tracker").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "tracker", mock.MatchedBy(func(name string) bool {
		return len(name) > len("receipts/") && name[:9] == "receipts/"
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	archive, err := NewReceiptArchive(context.Background(), mockClient, "tracker", "receipts")
	assert.NoError(t, err)

	svc := newTestService(t, archive)
	err = svc.AddTransaction(context.Background(), &models.WriteRequest{
		PatientName: "Test Patient",
		Device:      "O2 Generator",
		Status:      models.StatusDelivered,
	})
	assert.NoError(t, err)

	mockClient.AssertCalled(t, "PutObject", mock.Anything, "tracker", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ArchiveFailureDoesNotFailWrite(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "tracker").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	archive, err := NewReceiptArchive(context.Background(), mockClient, "tracker", "receipts")
	assert.NoError(t, err)

	svc := newTestService(t, archive)
	err = svc.AddTransaction(context.Background(), &models.WriteRequest{
		Device: "O2 Generator",
		Status: models.StatusDelivered,
	})
	assert.NoError(t, err, "the loan is saved even when the archive fails")
}
