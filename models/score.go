// file: models/score.go
package models

import (
	"time"
)

// Score 게임 1판의 점수 기록. 제출마다 한 행씩 쌓이며 불변이다.
// UserEmail 은 값 참조만 하고 FK 제약은 걸지 않는다 — 등록 여부 검증은
// API 계층에서 수행한다.
type Score struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	UserEmail string `gorm:"size:255;not null;index;index:idx_hellopy_score_email_created,priority:1" json:"user_email"`
	Score     int    `gorm:"not null;index:idx_hellopy_score_rank,priority:1,sort:desc" json:"score"`
	// 랭킹 정렬 (score desc, created_at asc) 과 시간 범위 필터 양쪽에 쓰인다
	CreatedAt time.Time `gorm:"index;index:idx_hellopy_score_email_created,priority:2;index:idx_hellopy_score_rank,priority:2" json:"created_at"`
}

func (Score) TableName() string {
	return "hellopy_score"
}
