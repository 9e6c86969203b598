package model

import (
	"time"
)

// BaseEntity holds audit columns shared by every table.
// GORM이 CreatedAt, UpdatedAt을 자동으로 관리하고
// CreatedBy, UpdatedBy는 Repository에서 행위자 회원 ID로 설정 (비회원 요청이면 NULL)
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *uint32   `gorm:"column:created_by"`
	UpdatedBy *uint32   `gorm:"column:updated_by"`
}
