// file: main.go
package main

import (
	"log"

	"github.com/HelloPy-Korea/hellopy-game/config"
	"github.com/HelloPy-Korea/hellopy-game/database"
	"github.com/HelloPy-Korea/hellopy-game/routes"
	"github.com/HelloPy-Korea/hellopy-game/services"
)

func main() {
	cfg := config.Load()

	database.Connect(cfg)
	database.MigrateTables()

	// 브로드캐스터는 프로세스당 하나. 여기서 만들어 핸들러에 주입한다.
	broadcaster := services.NewBroadcaster(cfg.EventQueueSize)

	r := routes.SetupRouter(broadcaster)

	log.Printf("Starting server on :%s (tz offset UTC%+d)", cfg.Port, cfg.TZOffsetHours)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
