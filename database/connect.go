// file: database/connect.go
package database

import (
	"log"
	"time"

	"github.com/HelloPy-Korea/hellopy-game/config"
	"github.com/HelloPy-Korea/hellopy-game/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	var err error
	// TranslateError: 유니크 제약 위반을 gorm.ErrDuplicatedKey 로 받기 위함
	DB, err = gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// 커넥션 풀 설정. MySQL 의 wait_timeout 으로 끊긴 커넥션을
	// 재사용하지 않도록 커넥션 수명을 1시간으로 제한한다.
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 부팅 시 테이블을 생성한다. 별도 마이그레이션 도구 없이
// 서버 기동만으로 바로 운영 가능해야 하는 부스 환경 전제.
func MigrateTables() {
	if err := DB.AutoMigrate(&models.User{}, &models.Score{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
