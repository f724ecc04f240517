// file: controllers/health_controller.go
package controllers

import (
	"github.com/HelloPy-Korea/hellopy-game/services"
	"github.com/HelloPy-Korea/hellopy-game/utils"
	"github.com/gin-gonic/gin"
)

// Healthz 헬스 체크. 구독자 수를 함께 내려줘서 부스 운영자가
// 전광판이 스트림에 붙어 있는지 바로 확인할 수 있게 한다.
func Healthz(b *services.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.Success(c, "ok", gin.H{
			"ok":          true,
			"subscribers": b.Count(),
		})
	}
}
