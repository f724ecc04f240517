// file: controllers/user_controller.go
package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/HelloPy-Korea/hellopy-game/config"
	"github.com/HelloPy-Korea/hellopy-game/database"
	"github.com/HelloPy-Korea/hellopy-game/dto"
	"github.com/HelloPy-Korea/hellopy-game/mappers"
	"github.com/HelloPy-Korea/hellopy-game/models"
	"github.com/HelloPy-Korea/hellopy-game/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// clampLimit 목록 조회 limit 를 [1, 1000] 으로 제한한다
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func listLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil {
		limit = defaultListLimit
	}
	return clampLimit(limit)
}

// Register 이메일 등록. 같은 이메일(대소문자 무시)로 다시 호출해도
// 행은 하나만 생기고 성공으로 응답한다.
func Register(c *gin.Context) {
	var req dto.RegisterEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "올바른 이메일 형식을 입력해주세요")
		return
	}
	email := normalizeEmail(req.Email)

	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		utils.Success(c, "ok", gin.H{"ok": true})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
		return
	}

	newUser := models.User{Email: email, CreatedAt: config.C.Now()}
	if err := database.DB.Create(&newUser).Error; err != nil {
		// 동시 등록 경합으로 유니크 제약에 걸린 경우도 멱등으로 본다
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Success(c, "ok", gin.H{"ok": true})
			return
		}
		utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
		return
	}

	utils.Success(c, "ok", gin.H{"ok": true})
}

// ListUsers 최근 등록 순 사용자 목록
func ListUsers(c *gin.Context) {
	limit := listLimit(c)

	var users []models.User
	if err := database.DB.
		Order("created_at desc").
		Limit(limit).
		Find(&users).Error; err != nil {
		utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
		return
	}

	utils.Success(c, "success", mappers.MapUsersToItems(users))
}

// ListUsersWithStats 사용자별 최고 점수/플레이 횟수 포함 목록 (운영자 화면용)
func ListUsersWithStats(c *gin.Context) {
	limit := listLimit(c)

	var rows []dto.UserWithStats
	if err := database.DB.
		Table("hellopy_user u").
		Select("u.email, u.created_at, COALESCE(MAX(s.score), 0) as max_score, COUNT(s.id) as game_count").
		Joins("LEFT JOIN hellopy_score s ON s.user_email = u.email").
		Group("u.email, u.created_at").
		Order("u.created_at desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
		return
	}

	utils.Success(c, "success", rows)
}

// GetUserScores 특정 사용자의 전체 점수 이력 (최신순)
func GetUserScores(c *gin.Context) {
	email := normalizeEmail(c.Query("email"))
	if email == "" {
		utils.Error(c, 1002, "이메일을 입력해주세요")
		return
	}

	var scores []models.Score
	if err := database.DB.
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&scores).Error; err != nil {
		utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
		return
	}

	utils.Success(c, "success", mappers.MapScoresToUserItems(scores))
}
