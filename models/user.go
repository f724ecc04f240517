// file: models/user.go
package models

import (
	"time"
)

// User 이메일 등록 사용자. 최초 등록 시 생성되며 이후 수정/삭제되지 않는다.
// 이메일은 저장 전에 소문자로 정규화되고, 유일성은 DB 제약으로 보장한다.
type User struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "hellopy_user"
}
