package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"residence_system/internal/domain"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func announcementRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *redis.Client) {
	t.Helper()
	db, mock := setupMockDB(t)
	rdb := setupTestRedis(t)
	r := gin.New()
	announcements := r.Group("/api/announcements")
	announcements.GET("", ListAnnouncementsHandler(db, rdb))
	announcements.GET("/:id", GetAnnouncementHandler(db))
	announcements.POST("", CreateAnnouncementHandler(db, rdb))
	announcements.PUT("/:id", UpdateAnnouncementHandler(db, rdb))
	announcements.DELETE("/:id", DeleteAnnouncementHandler(db, rdb))
	return r, mock, rdb
}

func announcementColumns() []string {
	return []string{"id", "title", "body", "posted_at"}
}

func TestCreateAnnouncement(t *testing.T) {
	r, mock, _ := announcementRouter(t)

	mock.ExpectExec("INSERT INTO `announcements`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/announcements",
		strings.NewReader(`{"title":"Maintenance","description":"Water off on Friday"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var a domain.Announcement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	// The client's "description" lands in the body field
	assert.Equal(t, "Water off on Friday", a.Body)
	// Timestamp is server-assigned at creation
	assert.False(t, a.PostedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAnnouncementBodyTooLong(t *testing.T) {
	r, mock, _ := announcementRouter(t)

	long := strings.Repeat("x", 2001)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/announcements",
		strings.NewReader(`{"title":"Too long","description":"`+long+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAnnouncementNotFound(t *testing.T) {
	r, mock, _ := announcementRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `announcements`").
		WillReturnRows(sqlmock.NewRows(announcementColumns()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/announcements/99",
		strings.NewReader(`{"title":"Gone","description":"nothing"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	// The store is unchanged on a missing id
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAnnouncement(t *testing.T) {
	r, mock, _ := announcementRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `announcements`").
		WillReturnRows(sqlmock.NewRows(announcementColumns()).
			AddRow(1, "Maintenance", "Water off on Friday", time.Now()))
	mock.ExpectExec("DELETE FROM `announcements`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/announcements/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
