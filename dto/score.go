// file: dto/score.go
package dto

import "time"

// SubmitScoreReq 점수 제출 요청.
// Score 는 0점 제출과 필드 누락을 구분하기 위해 포인터로 받는다.
// gte=0 으로 음수 점수는 비즈니스 로직에 도달하기 전에 거부된다.
type SubmitScoreReq struct {
	Email string `json:"email" binding:"required,email"`
	Score *int   `json:"score" binding:"required,gte=0"`
}

type UserScoreItem struct {
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
