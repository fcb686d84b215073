package model

import (
	"time"
)

// ProjectModel 志愿者派遣项目模型
type ProjectModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`

	// 所属合作伙伴
	PartnerId int64 `json:"partner_id" gorm:"not null;index" binding:"required"`

	// 名额信息
	RequiredVolunteers int `json:"required_volunteers" gorm:"not null" binding:"required,min=1"`
	CurrentVolunteers  int `json:"current_volunteers" gorm:"default:0"`

	// 时间信息
	StartDate           time.Time `json:"start_date" gorm:"not null"`
	EndDate             time.Time `json:"end_date" gorm:"not null"`
	ApplicationDeadline time.Time `json:"application_deadline"`

	// 状态
	Status ProjectStatus `json:"status" gorm:"default:'pending'"`

	// 生命周期时间戳
	PublishedAt *time.Time `json:"published_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusPending ProjectStatus = "pending" // 待审核
	ProjectStatusActive  ProjectStatus = "active"  // 进行中
	ProjectStatusClosed  ProjectStatus = "closed"  // 已关闭（终态）
)

// HasOpenSlot 是否还有空余名额
func (p *ProjectModel) HasOpenSlot() bool {
	return p.CurrentVolunteers < p.RequiredVolunteers
}

// TableName 自定义表名
func (ProjectModel) TableName() string {
	return "project"
}
