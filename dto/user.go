// file: dto/user.go
package dto

import "time"

// ========== 요청 DTO ==========

// RegisterEmailReq 이메일 등록 요청. 형식 검증은 binding 태그가 담당한다.
type RegisterEmailReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ========== 응답 DTO ==========

type UserItem struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserWithStats 운영자 화면용 사용자 통계 (최고 점수, 플레이 횟수)
type UserWithStats struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	MaxScore  int       `json:"max_score"`
	GameCount int64     `json:"game_count"`
}
