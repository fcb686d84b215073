package model

import (
	"time"
)

// NotificationModel 通知记录模型
type NotificationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// 关联的项目
	ProjectId int64 `json:"project_id" gorm:"index"`

	// 通知类型
	Kind NotificationKind `json:"kind" gorm:"not null"`

	// 通知内容
	Message string `json:"message" gorm:"type:text"`
}

// NotificationKind 通知类型
type NotificationKind string

const (
	NotificationDeadlineReminder NotificationKind = "deadline_reminder" // 截止日期提醒
	NotificationAutoClosed       NotificationKind = "auto_closed"       // 项目已自动关闭
	NotificationCloseFailed      NotificationKind = "close_failed"      // 自动关闭失败
)

// TableName 自定义表名
func (NotificationModel) TableName() string {
	return "notification"
}
