// file: services/leaderboard_service.go
package services

import (
	"time"

	"github.com/HelloPy-Korea/hellopy-game/config"
	"github.com/HelloPy-Korea/hellopy-game/database"
	"github.com/HelloPy-Korea/hellopy-game/dto"
	"github.com/HelloPy-Korea/hellopy-game/mappers"
	"github.com/HelloPy-Korea/hellopy-game/models"
)

// LeaderboardSize 두 랭킹 뷰 공통의 상위 노출 개수
const LeaderboardSize = 10

// ComputeSnapshot 전체 랭킹과 현재 시간대(정시 이후) 랭킹을 새로 계산한다.
// 정렬 기준: 점수 내림차순, 동점이면 먼저 제출한 쪽이 위.
// 매 호출마다 DB 를 조회하며 캐시는 두지 않는다 — 부스 트래픽 규모에서는
// 즉시성이 캐시보다 중요하다.
func ComputeSnapshot() (dto.LeaderboardSnapshot, error) {
	now := config.C.Now()

	var allTime []models.Score
	if err := database.DB.
		Order("score desc, created_at asc").
		Limit(LeaderboardSize).
		Find(&allTime).Error; err != nil {
		return dto.LeaderboardSnapshot{}, err
	}

	var thisHour []models.Score
	if err := database.DB.
		Where("created_at >= ?", HourStart(now)).
		Order("score desc, created_at asc").
		Limit(LeaderboardSize).
		Find(&thisHour).Error; err != nil {
		return dto.LeaderboardSnapshot{}, err
	}

	return dto.LeaderboardSnapshot{
		AllTime:     mappers.MapScoresToItems(allTime),
		ThisHour:    mappers.MapScoresToItems(thisHour),
		GeneratedAt: now,
	}, nil
}

// HourStart t 가 속한 정시. 분/초/나노초를 0으로 만들고 시간대는 유지한다.
func HourStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
