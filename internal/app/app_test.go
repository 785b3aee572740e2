package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NhatNguyen1502/ecommerce-services/internal/app"
	"github.com/NhatNguyen1502/ecommerce-services/internal/config"
	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
	"github.com/NhatNguyen1502/ecommerce-services/internal/revocation"
	"github.com/NhatNguyen1502/ecommerce-services/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	cfg := &config.Config{
		Env:             "local",
		Secret:          "test-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	return app.NewRouter(cfg, db, revocation.NewMemory(), nil), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signUpBody(email string) gin.H {
	return gin.H{
		"email":        email,
		"password":     "password123",
		"first_name":   "Alice",
		"last_name":    "Nguyen",
		"phone_number": "0123456789",
		"address":      "12 Ly Thuong Kiet",
	}
}

func signIn(t *testing.T, router *gin.Engine, email, password string) (access, refresh string) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-in", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	access, _ = body["access_token"].(string)
	refresh, _ = body["refresh_token"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, db.Create(&entity.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hash),
		RoleID:    1,
		FirstName: "Site",
		LastName:  "Admin",
		IsActive:  true,
	}).Error)
}

func TestAuthenticationLifecycle(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("alice@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	access, refresh := signIn(t, router, "alice@example.com", "password123")

	// a fresh access token reaches protected routes
	rec = doJSON(t, router, http.MethodGet, "/customer/profile", access, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "alice@example.com", decodeBody(t, rec)["email"])

	rec = doJSON(t, router, http.MethodPost, "/auth/logout", access, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// the revoked token is refused even though it has not expired
	rec = doJSON(t, router, http.MethodGet, "/customer/profile", access, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// logout cleared the stored refresh token, so the old one is dead too
	rec = doJSON(t, router, http.MethodPost, "/auth/refresh-token", "", gin.H{"refresh_token": refresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// a second logout with the same token reports it as already disabled
	rec = doJSON(t, router, http.MethodPost, "/auth/logout", access, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// signing in again issues a working pair
	access, _ = signIn(t, router, "alice@example.com", "password123")
	rec = doJSON(t, router, http.MethodGet, "/customer/profile", access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshToken_IssuesNewAccessToken(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("bob@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	_, refresh := signIn(t, router, "bob@example.com", "password123")

	rec = doJSON(t, router, http.MethodPost, "/auth/refresh-token", "", gin.H{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	access, _ := decodeBody(t, rec)["access_token"].(string)
	require.NotEmpty(t, access)

	rec = doJSON(t, router, http.MethodGet, "/customer/profile", access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the stored refresh token was not rotated, so it keeps working
	rec = doJSON(t, router, http.MethodPost, "/auth/refresh-token", "", gin.H{"refresh_token": refresh})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("carol@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	access, _ := signIn(t, router, "carol@example.com", "password123")

	rec = doJSON(t, router, http.MethodPost, "/auth/refresh-token", "", gin.H{"refresh_token": access})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutes_RequireAccessToken(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("dave@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	// no Authorization header at all
	rec = doJSON(t, router, http.MethodGet, "/customer/profile", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// garbage token
	rec = doJSON(t, router, http.MethodGet, "/customer/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// refresh tokens never authorize API calls
	_, refresh := signIn(t, router, "dave@example.com", "password123")
	rec = doJSON(t, router, http.MethodGet, "/customer/profile", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("erin@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/sign-in", "", gin.H{
		"email":    "erin@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/sign-in", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("frank@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("frank@example.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoleGuard(t *testing.T) {
	router, db := newTestServer(t)
	seedAdmin(t, db, "admin@example.com", "admin-pass")

	rec := doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("grace@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	customerToken, _ := signIn(t, router, "grace@example.com", "password123")
	adminToken, _ := signIn(t, router, "admin@example.com", "admin-pass")

	// customers are kept out of the admin surface
	rec = doJSON(t, router, http.MethodGet, "/admin/customers", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/admin/customers", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// admins may use the customer surface as well
	rec = doJSON(t, router, http.MethodGet, "/customer/profile", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogAndCart(t *testing.T) {
	router, db := newTestServer(t)
	seedAdmin(t, db, "admin@example.com", "admin-pass")
	adminToken, _ := signIn(t, router, "admin@example.com", "admin-pass")

	rec := doJSON(t, router, http.MethodPost, "/admin/categories", adminToken, gin.H{"name": "Mugs"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	categoryID, _ := decodeBody(t, rec)["id"].(string)
	require.NotEmpty(t, categoryID)

	rec = doJSON(t, router, http.MethodPost, "/admin/products", adminToken, gin.H{
		"category_id": categoryID,
		"name":        "Enamel mug",
		"description": "350ml",
		"image_url":   "https://cdn.example.com/mug.jpg",
		"price":       9.5,
		"quantity":    20,
		"is_featured": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	productID, _ := decodeBody(t, rec)["id"].(string)
	require.NotEmpty(t, productID)

	// catalog reads are public
	rec = doJSON(t, router, http.MethodGet, "/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Enamel mug", decodeBody(t, rec)["name"])

	rec = doJSON(t, router, http.MethodGet, "/products/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// a signed-in customer fills their cart
	rec = doJSON(t, router, http.MethodPost, "/auth/sign-up", "", signUpBody("heidi@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)
	customerToken, _ := signIn(t, router, "heidi@example.com", "password123")

	rec = doJSON(t, router, http.MethodPost, "/customer/cart", customerToken, gin.H{
		"product_id": productID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/customer/cart/count", customerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])

	// more than the stock is refused
	rec = doJSON(t, router, http.MethodPost, "/customer/cart", customerToken, gin.H{
		"product_id": productID,
		"quantity":   100,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
