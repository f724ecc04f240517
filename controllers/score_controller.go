// file: controllers/score_controller.go
package controllers

import (
	"errors"

	"github.com/HelloPy-Korea/hellopy-game/config"
	"github.com/HelloPy-Korea/hellopy-game/database"
	"github.com/HelloPy-Korea/hellopy-game/dto"
	"github.com/HelloPy-Korea/hellopy-game/mappers"
	"github.com/HelloPy-Korea/hellopy-game/models"
	"github.com/HelloPy-Korea/hellopy-game/services"
	"github.com/HelloPy-Korea/hellopy-game/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmitScore 점수 제출: 검증 → 저장 → 리더보드 재계산 → 브로드캐스트.
// 행이 저장된 뒤의 재계산/브로드캐스트 실패는 제출 응답에 영향을 주지 않는다.
func SubmitScore(b *services.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SubmitScoreReq
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 1001, "잘못된 요청입니다: "+err.Error())
			return
		}
		email := normalizeEmail(req.Email)

		var user models.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, 2001, "등록되지 않은 이메일입니다")
			} else {
				utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
			}
			return
		}

		score := models.Score{
			UserEmail: email,
			Score:     *req.Score,
			CreatedAt: config.C.Now(),
		}
		if err := database.DB.Create(&score).Error; err != nil {
			utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
			return
		}

		if snap, err := services.ComputeSnapshot(); err != nil {
			utils.LogError("리더보드 재계산 실패: %v", err)
		} else {
			b.Publish(mappers.MapSnapshotToEvent(snap))
		}

		utils.Success(c, "ok", gin.H{"ok": true})
	}
}
