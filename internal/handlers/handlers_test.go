package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mealbase-dev/mealbase/internal/auth"
	"github.com/mealbase-dev/mealbase/internal/config"
	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/router"
	"github.com/mealbase-dev/mealbase/internal/store"
)

const testAPIKey = "test-api-key"

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.Init("test-secret"))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	st := store.New(db)
	require.NoError(t, st.AutoMigrate())

	t.Cleanup(func() {
		sqlDB.Close()
	})

	cfg := &config.Config{
		Port:      "3000",
		Env:       "test",
		APIKey:    testAPIKey,
		JWTSecret: "test-secret",
	}

	return router.NewRouter(st, cfg), st
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyRequired(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/roles", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleLifecycle(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/roles", gin.H{"name": "admin", "description": "full access"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Role
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/roles/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/roles/%d", created.ID), gin.H{"name": "viewer"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Role
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "viewer", updated.Name)
	require.Empty(t, updated.Description)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/roles/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/roles/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/roles/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateRoleConflicts(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/roles", gin.H{"name": "admin"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/roles", gin.H{"name": "admin"})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUserWithUnknownRoleConflicts(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/users", gin.H{
		"name":     "Orphan",
		"email":    "orphan@example.com",
		"password": "secret",
		"role_id":  999,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestMalformedBodyRejected(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/roles", gin.H{"description": "no name"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNonNumericIDRejected(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/api/roles/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNestedListingChecksParent(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()

	w := doRequest(t, r, http.MethodGet, "/api/roles/999/users", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	role := &models.Role{Name: "member"}
	require.NoError(t, st.Roles.Create(ctx, role))

	user := &models.User{Name: "Alice", Email: "alice@example.com", Password: "secret", RoleID: role.ID}
	require.NoError(t, st.Users.Create(ctx, user))

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/roles/%d/users", role.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	require.Equal(t, "Alice", users[0].Name)
}

func TestDuplicateMembershipConflicts(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()

	role := &models.Role{Name: "member"}
	require.NoError(t, st.Roles.Create(ctx, role))

	user := &models.User{Name: "Alice", Email: "alice@example.com", Password: "secret", RoleID: role.ID}
	require.NoError(t, st.Users.Create(ctx, user))

	group := &models.Group{Name: "household"}
	require.NoError(t, st.Groups.Create(ctx, group))

	body := gin.H{"user_id": user.ID, "group_id": group.ID}

	w := doRequest(t, r, http.MethodPost, "/api/user-groups", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/user-groups", body)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	r, st := newTestServer(t)
	ctx := context.Background()

	role := &models.Role{Name: "member"}
	require.NoError(t, st.Roles.Create(ctx, role))

	user := &models.User{Name: "Alice", Email: "alice@example.com", Password: "secret", RoleID: role.ID}
	require.NoError(t, st.Users.Create(ctx, user))

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "alice@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "alice@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var meResp struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meResp))
	require.Equal(t, "alice@example.com", meResp.User.Email)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
