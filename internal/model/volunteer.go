package model

import (
	"time"
)

// VolunteerModel 志愿者模型
type VolunteerModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 身份信息
	Name           string `json:"name" gorm:"not null" binding:"required"`
	Email          string `json:"email" gorm:"not null;index" binding:"required,email"`
	Phone          string `json:"phone"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`

	// 档案信息（影响档案完整度）
	Address      string `json:"address"`
	Region       string `json:"region"`
	Education    string `json:"education"`
	Skills       string `json:"skills" gorm:"type:text"`
	Motivation   string `json:"motivation" gorm:"type:text"`
	Availability string `json:"availability"`

	// 状态
	Status VolunteerStatus `json:"status" gorm:"default:'candidat'"`
}

// VolunteerStatus 志愿者状态
type VolunteerStatus string

const (
	VolunteerStatusCandidat VolunteerStatus = "candidat"   // 候选人
	VolunteerStatusWaiting  VolunteerStatus = "en_attente" // 等待派遣
	VolunteerStatusActive   VolunteerStatus = "actif"      // 在岗
	VolunteerStatusInactive VolunteerStatus = "inactif"    // 停用
	VolunteerStatusRefused  VolunteerStatus = "refuse"     // 已拒绝
)

// TableName 自定义表名
func (VolunteerModel) TableName() string {
	return "volunteer"
}
