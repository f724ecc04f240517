// file: controllers/setup_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HelloPy-Korea/hellopy-game/config"
	"github.com/HelloPy-Korea/hellopy-game/database"
	"github.com/HelloPy-Korea/hellopy-game/models"
	"github.com/HelloPy-Korea/hellopy-game/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// apiResp utils.Response 와 동일하되 Data 를 테스트별 타입으로 다시 풀 수 있게 raw 로 받는다
type apiResp struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data,omitempty"`
}

func setupTest(t *testing.T) (*gin.Engine, *services.Broadcaster) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.C = &config.Config{TZOffsetHours: 9, EventQueueSize: 16}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Score{}))
	database.DB = db

	b := services.NewBroadcaster(4)

	r := gin.New()
	r.POST("/register", Register)
	r.POST("/score", SubmitScore(b))
	r.GET("/leaderboard", GetLeaderboard)
	r.GET("/users", ListUsers)
	r.GET("/users/stats", ListUsersWithStats)
	r.GET("/user-scores", GetUserScores)
	r.GET("/healthz", Healthz(b))

	return r, b
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) apiResp {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.DB.Model(model).Count(&n).Error)
	return n
}
