// file: routes/router.go
package routes

import (
	"path/filepath"

	"github.com/HelloPy-Korea/hellopy-game/config"
	"github.com/HelloPy-Korea/hellopy-game/controllers"
	"github.com/HelloPy-Korea/hellopy-game/middlewares"
	"github.com/HelloPy-Korea/hellopy-game/services"
	"github.com/gin-gonic/gin"
)

func SetupRouter(b *services.Broadcaster) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS(config.C.CORSOrigins))

	// 모든 API 를 루트와 /game 프리픽스 양쪽에 마운트한다.
	// 백엔드가 /game 하위로 리버스 프록시되는 행사장 배포 환경 대응.
	mount := func(g *gin.RouterGroup) {
		g.POST("/register", controllers.Register)
		g.POST("/score", controllers.SubmitScore(b))
		g.GET("/leaderboard", controllers.GetLeaderboard)
		g.GET("/users", controllers.ListUsers)
		g.GET("/users/stats", controllers.ListUsersWithStats)
		g.GET("/user-scores", controllers.GetUserScores)
		g.GET("/events", controllers.StreamLeaderboard(b))
		g.GET("/healthz", controllers.Healthz(b))
	}
	mount(r.Group(""))
	mount(r.Group("/game"))

	// 키오스크 정적 페이지. STATIC_DIR 미설정이면 API 전용으로 기동한다.
	if dir := config.C.StaticDir; dir != "" {
		r.Static("/static", dir)
		r.StaticFile("/", filepath.Join(dir, "index.html"))
		r.StaticFile("/game", filepath.Join(dir, "index.html"))
		r.StaticFile("/game/play", filepath.Join(dir, "game.html"))
		r.StaticFile("/game/user", filepath.Join(dir, "users.html"))
	}

	return r
}
