package model

import (
	"time"
)

// AffectationModel 志愿者派遣记录模型
type AffectationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联信息
	VolunteerId int64 `json:"volunteer_id" gorm:"not null;index"`
	ProjectId   int64 `json:"project_id" gorm:"not null;index"`

	// 派遣信息
	AssignedAt time.Time  `json:"assigned_at" gorm:"not null"`
	EndedAt    *time.Time `json:"ended_at"`
	Role       string     `json:"role"`

	// 状态，同一 (volunteer, project) 最多一条 active 记录
	Status AffectationStatus `json:"status" gorm:"default:'active'"`
}

// AffectationStatus 派遣状态
type AffectationStatus string

const (
	AffectationStatusActive    AffectationStatus = "active"   // 在岗
	AffectationStatusFinished  AffectationStatus = "terminee" // 已结束
	AffectationStatusCancelled AffectationStatus = "annulee"  // 已取消
	AffectationStatusInactive  AffectationStatus = "inactive" // 暂停
)

// TableName 自定义表名
func (AffectationModel) TableName() string {
	return "affectation"
}
