package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"
	"AgileMoodGo/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	config.DB = db
	config.Logger = zap.NewNop().Sugar()
	return mock
}

func registerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ac := AuthController{}
	r.POST("/api/v1/auth/register", ac.Register)
	return r
}

func postRegister(t *testing.T, r *gin.Engine, body models.RegisterRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func inviteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "team_id", "role", "created_at", "used_at", "user_id"}).
		AddRow("inv-1", "ABCDEF", 7, "employee", time.Now(), nil, nil)
}

// A failed user insert must roll the invite back to unused, the code is
// one-time and may not be burned by a registration that never happened.
func TestRegisterRollsBackInviteWhenUserCreateFails(t *testing.T) {
	mock := setupMockDB(t)
	r := registerRouter()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `invite_codes`").
		WillReturnRows(inviteRows())
	mock.ExpectExec("UPDATE `invite_codes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(fmt.Errorf("Error 1062 (23000): Duplicate entry 'ana@example.com'"))
	mock.ExpectRollback()

	w := postRegister(t, r, models.RegisterRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "s3nha-forte",
		InviteCode: "ABCDEF",
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterCommitsInviteAndUserTogether(t *testing.T) {
	utils.InitJWT("test-secret")
	mock := setupMockDB(t)
	r := registerRouter()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `invite_codes`").
		WillReturnRows(inviteRows())
	mock.ExpectExec("UPDATE `invite_codes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := postRegister(t, r, models.RegisterRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "s3nha-forte",
		InviteCode: "ABCDEF",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Error("response carries no token")
	}
	if resp.User.TeamID == nil || *resp.User.TeamID != 7 {
		t.Errorf("user team = %v, want 7 from the invite", resp.User.TeamID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
