package userControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Themorocd/ShopFast/mail"
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

func loginRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/users/login", Login(db))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func userRow(t *testing.T, password string, verified bool) *sqlmock.Rows {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "verified"}).
		AddRow(7, "Alice", "alice@example.com", string(hashed), "customer", verified)
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	r := loginRouter(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}))

	w := postJSON(r, "/api/users/login", `{"email": "ghost@example.com", "password": "secret123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := setupMockDB(t)
	r := loginRouter(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(t, "secret123", true))

	w := postJSON(r, "/api/users/login", `{"email": "alice@example.com", "password": "not-the-password"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnverifiedAccount(t *testing.T) {
	db, mock := setupMockDB(t)
	r := loginRouter(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(t, "secret123", false))

	w := postJSON(r, "/api/users/login", `{"email": "alice@example.com", "password": "secret123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Verify your account")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	db, mock := setupMockDB(t)
	r := loginRouter(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(t, "secret123", true))

	w := postJSON(r, "/api/users/login", `{"email": "alice@example.com", "password": "secret123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterEmailTaken(t *testing.T) {
	db, mock := setupMockDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/users/register", Register(db, mail.NewMailerFromEnv()))

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(t, "secret123", true))

	w := postJSON(r, "/api/users/register",
		`{"name": "Alice", "email": "alice@example.com", "password": "secret123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}
