package cartControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(7))
	})
	r.POST("/api/cart/items", AddItem(db))
	r.DELETE("/api/cart/items/:id", RemoveItem(db))
	return r
}

// Adding a product that is already in the cart merges into the existing
// row by incrementing its quantity; the price snapshot is untouched.
func TestAddItemMergesExistingProduct(t *testing.T) {
	db, mock := setupMockDB(t)
	r := setupRouter(db)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
			AddRow(5, "Keyboard", "10.00", 20))
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity", "unit_price"}).
			AddRow(9, 3, 5, 2, "10.00"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := bytes.NewBufferString(`{"product_id": 5, "quantity": 3}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":5`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItemCreatesNewRowWithPriceSnapshot(t *testing.T) {
	db, mock := setupMockDB(t)
	r := setupRouter(db)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
			AddRow(5, "Keyboard", "10.00", 20))
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity", "unit_price"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	body := bytes.NewBufferString(`{"product_id": 5, "quantity": 2}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"unit_price":"10"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItemUnknownProduct(t *testing.T) {
	db, mock := setupMockDB(t)
	r := setupRouter(db)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}))

	body := bytes.NewBufferString(`{"product_id": 999, "quantity": 1}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItemNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	r := setupRouter(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/cart/items/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
