package model

import (
	"time"
)

// CandidatureModel 志愿者申请模型
type CandidatureModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联信息
	VolunteerId int64 `json:"volunteer_id" gorm:"index"`
	ProjectId   int64 `json:"project_id" gorm:"index"`

	// 申请人快照（提交时的身份信息，独立于志愿者档案）
	Name           string `json:"name" gorm:"not null" binding:"required"`
	Email          string `json:"email" gorm:"not null;index" binding:"required,email"`
	Phone          string `json:"phone"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Skills         string `json:"skills" gorm:"type:text"`
	Motivation     string `json:"motivation" gorm:"type:text"`

	// 申请的岗位
	RequestedRole string `json:"requested_role"`

	// 状态
	Status CandidatureStatus `json:"status" gorm:"default:'pending'"`

	// 备注
	Notes string `json:"notes" gorm:"type:text"`
}

// CandidatureStatus 申请状态
type CandidatureStatus string

const (
	CandidatureStatusPending   CandidatureStatus = "pending"   // 待处理
	CandidatureStatusInterview CandidatureStatus = "interview" // 面试中
	CandidatureStatusAccepted  CandidatureStatus = "accepted"  // 已录取
	CandidatureStatusRejected  CandidatureStatus = "rejected"  // 已拒绝
)

// TableName 自定义表名
func (CandidatureModel) TableName() string {
	return "candidature"
}
