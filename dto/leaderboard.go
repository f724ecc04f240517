// file: dto/leaderboard.go
package dto

import "time"

// EventTypeLeaderboard SSE 이벤트 봉투의 type 값
const EventTypeLeaderboard = "leaderboard"

type ScoreItem struct {
	Email     string    `json:"email"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardSnapshot 조회 시점에 새로 계산되는 리더보드 뷰.
// 저장되지 않으며 캐시도 없다.
type LeaderboardSnapshot struct {
	AllTime     []ScoreItem `json:"all_time"`
	ThisHour    []ScoreItem `json:"this_hour"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// LeaderboardEvent 구독자에게 전달되는 이벤트 봉투
type LeaderboardEvent struct {
	Type        string      `json:"type"`
	AllTime     []ScoreItem `json:"all_time"`
	ThisHour    []ScoreItem `json:"this_hour"`
	GeneratedAt time.Time   `json:"generated_at"`
}
