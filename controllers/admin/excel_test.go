package adminControllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
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

func importRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/products/import-excel", ImportProductsFromExcel(db))
	return r
}

// buildProductSheet writes an xlsx workbook with a header row plus the
// given data rows and wraps it in a multipart form upload.
func buildProductSheet(t *testing.T, rows [][]string) (*bytes.Buffer, string) {
	t.Helper()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	require.NoError(t, err)

	header := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Description", "Price", "Stock", "CategoryID", "SupplierID", "Image"} {
		header.AddCell().SetValue(h)
	}
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, cell := range cells {
			row.AddCell().SetValue(cell)
		}
	}

	var sheetBuf bytes.Buffer
	require.NoError(t, file.Write(&sheetBuf))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "products.xlsx")
	require.NoError(t, err)
	_, err = part.Write(sheetBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestImportProductsUpsertsAndSkips(t *testing.T) {
	db, mock := setupMockDB(t)
	r := importRouter(db)

	// Row with an existing ID updates, row without one creates, row with
	// an unparseable price is skipped.
	body, contentType := buildProductSheet(t, [][]string{
		{"1", "Keyboard", "Mechanical", "49.90", "12", "2", "3", ""},
		{"", "Mouse", "Wireless", "19.90", "30", "2", "3", ""},
		{"", "Broken", "Bad price", "not-a-price", "5", "2", "3", ""},
	})

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
			AddRow(1, "Old keyboard", "39.90", 4))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/products/import-excel", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created_count":1`)
	assert.Contains(t, w.Body.String(), `"updated_count":1`)
	assert.Contains(t, w.Body.String(), `"skipped_count":1`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportProductsRejectsEmptySheet(t *testing.T) {
	db, mock := setupMockDB(t)
	r := importRouter(db)

	body, contentType := buildProductSheet(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/products/import-excel", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportProductsRequiresFile(t *testing.T) {
	db, mock := setupMockDB(t)
	r := importRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/products/import-excel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
