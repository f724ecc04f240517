// file: controllers/leaderboard_controller.go
package controllers

import (
	"io"
	"time"

	"github.com/HelloPy-Korea/hellopy-game/mappers"
	"github.com/HelloPy-Korea/hellopy-game/services"
	"github.com/HelloPy-Korea/hellopy-game/utils"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard 리더보드 조회. 매 요청마다 새로 계산한다.
func GetLeaderboard(c *gin.Context) {
	snap, err := services.ComputeSnapshot()
	if err != nil {
		utils.Error(c, 5000, "데이터베이스 오류: "+err.Error())
		return
	}
	utils.Success(c, "success", snap)
}

// StreamLeaderboard SSE 스트림. 접속하면 현재 스냅샷을 즉시 내려주고,
// 이후 점수 제출로 발행되는 이벤트를 연결이 끊길 때까지 중계한다.
// 재접속 시 놓친 이벤트의 리플레이는 없다 — 새 구독으로 최신 상태를 받는다.
func StreamLeaderboard(b *services.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := b.Subscribe()
		defer b.Unsubscribe(sub)

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		// nginx 뒤에서 응답 버퍼링 금지
		c.Writer.Header().Set("X-Accel-Buffering", "no")

		if snap, err := services.ComputeSnapshot(); err == nil {
			c.SSEvent("message", mappers.MapSnapshotToEvent(snap))
			c.Writer.Flush()
		}

		// 프록시/브라우저가 유휴 연결을 끊지 않도록 주기적으로 ping
		ping := time.NewTicker(15 * time.Second)
		defer ping.Stop()

		c.Stream(func(w io.Writer) bool {
			select {
			case ev := <-sub.C:
				c.SSEvent("message", ev)
				return true
			case <-ping.C:
				// SSE 주석 라인: 클라이언트 이벤트로는 전달되지 않는 keep-alive
				w.Write([]byte(": ping\n\n"))
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
