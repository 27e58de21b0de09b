package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"residence_system/internal/domain"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenantRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := setupMockDB(t)
	r := gin.New()
	tenants := r.Group("/api/tenants")
	tenants.GET("", ListTenantsHandler(db))
	tenants.GET("/:id", GetTenantHandler(db))
	tenants.POST("", CreateTenantHandler(db))
	tenants.PUT("/:id", UpdateTenantHandler(db))
	tenants.DELETE("/:id", DeleteTenantHandler(db))
	return r, mock
}

func TestCreateTenant(t *testing.T) {
	r, mock := tenantRouter(t)

	mock.ExpectExec("INSERT INTO `tenants`").
		WillReturnResult(sqlmock.NewResult(5, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tenants",
		strings.NewReader(`{"name":"Bob","contact":"bob@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var tenant domain.Tenant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tenant))
	assert.Equal(t, "Bob", tenant.Name)
	// Tenants are created independently of any room
	assert.Nil(t, tenant.Room)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTenant(t *testing.T) {
	r, mock := tenantRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `tenants`").
		WillReturnRows(sqlmock.NewRows(tenantColumns()).
			AddRow(5, "Bob", "101", "bob@example.com"))
	mock.ExpectExec("UPDATE `tenants` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tenants/5",
		strings.NewReader(`{"name":"Robert","room":"202","contact":"bob@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var tenant domain.Tenant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tenant))
	assert.Equal(t, "Robert", tenant.Name)
	require.NotNil(t, tenant.Room)
	assert.Equal(t, "202", *tenant.Room)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTenantNotFound(t *testing.T) {
	r, mock := tenantRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `tenants`").
		WillReturnRows(sqlmock.NewRows(tenantColumns()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tenants/99",
		strings.NewReader(`{"name":"Ghost","contact":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	// No write reaches the store for a missing id
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTenantNotFound(t *testing.T) {
	r, mock := tenantRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `tenants`").
		WillReturnRows(sqlmock.NewRows(tenantColumns()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tenants/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
