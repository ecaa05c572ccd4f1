package orderControllers

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Themorocd/ShopFast/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestComputeTotal(t *testing.T) {
	items := []LineItemInput{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
	}

	total := ComputeTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("25.50")),
		"expected 25.50, got %s", total)
}

func TestComputeTotalEmpty(t *testing.T) {
	assert.True(t, ComputeTotal(nil).IsZero())
}

func TestCreateOrderWithPayment(t *testing.T) {
	db, mock := setupMockDB(t)

	items := []LineItemInput{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "order_lines"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "order_lines"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	order, total, err := CreateOrderWithPayment(db, 7, items,
		models.PaymentMethodMock, models.PaymentStatusApproved, "MOCK-test")

	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.True(t, total.Equal(decimal.RequireFromString("25.50")),
		"expected 25.50, got %s", total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure on the last insert must undo the order header and the lines
// written earlier in the same call.
func TestCreateOrderWithPaymentRollsBackOnFailure(t *testing.T) {
	db, mock := setupMockDB(t)

	items := []LineItemInput{
		{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "order_lines"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnError(errors.New("payment insert failed"))
	mock.ExpectRollback()

	order, total, err := CreateOrderWithPayment(db, 7, items,
		models.PaymentMethodMock, models.PaymentStatusApproved, "MOCK-test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment insert failed")
	assert.Nil(t, order)
	assert.True(t, total.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
