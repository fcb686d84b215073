package task

import (
	"fmt"
	"time"

	"github.com/blues/vds/internal/config"
	"github.com/blues/vds/internal/logger"
	"github.com/blues/vds/internal/logic"
	"github.com/blues/vds/internal/model"
	"github.com/blues/vds/internal/notify"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// ProjectDeadlineJob 项目截止日期扫描任务。逾期项目自动关闭，
// 即将到期的项目只发提醒通知，不改状态。
type ProjectDeadlineJob struct {
	db           *gorm.DB
	config       *config.Config
	notifier     notify.Notifier
	projectLogic *logic.ProjectLogic
}

// NewProjectDeadlineJob 创建截止日期扫描任务
func NewProjectDeadlineJob(db *gorm.DB, cfg *config.Config, notifier notify.Notifier) *ProjectDeadlineJob {
	return &ProjectDeadlineJob{
		db:           db,
		config:       cfg,
		notifier:     notifier,
		projectLogic: logic.NewProjectLogic(db),
	}
}

// GetName 获取任务名称
func (j *ProjectDeadlineJob) GetName() string {
	return "project_deadline_monitor"
}

// GetSchedule 获取调度配置
func (j *ProjectDeadlineJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行一次扫描。单个项目的关闭失败降级为通知，不中断扫描。
func (j *ProjectDeadlineJob) Execute() {
	logger.Info("Starting project deadline scan")

	now := time.Now()
	reminderDays := j.config.Task.ReminderDays
	horizon := now.AddDate(0, 0, reminderDays+1)

	// 一次取出所有未关闭且结束日期在提醒窗口内的项目，再在内存里分类
	var projects []model.ProjectModel
	err := j.db.Where("status IN ?", []model.ProjectStatus{
		model.ProjectStatusPending,
		model.ProjectStatusActive,
	}).Where("end_date <= ?", horizon).
		Find(&projects).Error
	if err != nil {
		logger.Error("Failed to fetch projects for deadline scan: %v", err)
		return
	}

	closedCount := 0
	remindedCount := 0

	for _, project := range projects {
		if project.EndDate.Before(now) {
			// 逾期，尝试自动关闭
			if err := j.projectLogic.Transition(&project, model.ProjectStatusClosed); err != nil {
				logger.Warn("Automatic closure of project %d rejected: %v", project.Id, err)
				j.notifier.Notify(model.NotificationModel{
					ProjectId: project.Id,
					Kind:      model.NotificationCloseFailed,
					Message:   fmt.Sprintf("项目 %s 自动关闭失败: %v", project.Title, err),
				})
				continue
			}

			logger.Info("Project %d automatically closed, end date %s",
				project.Id, project.EndDate.Format("2006-01-02"))
			j.notifier.Notify(model.NotificationModel{
				ProjectId: project.Id,
				Kind:      model.NotificationAutoClosed,
				Message:   fmt.Sprintf("项目 %s 已到期并自动关闭", project.Title),
			})
			closedCount++
			continue
		}

		// 未逾期，结束日期为今天或恰好 reminderDays 天后时发提醒
		days := daysUntil(now, project.EndDate)
		if days == 0 || days == reminderDays {
			j.notifier.Notify(model.NotificationModel{
				ProjectId: project.Id,
				Kind:      model.NotificationDeadlineReminder,
				Message:   fmt.Sprintf("项目 %s 将在 %d 天后到期", project.Title, days),
			})
			remindedCount++
		}
	}

	logger.Info("Project deadline scan completed. Closed %d, reminded %d projects",
		closedCount, remindedCount)
}

// daysUntil 按自然日计算从 now 到 deadline 相差的天数
func daysUntil(now, deadline time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, deadline.Location())
	return int(due.Sub(today).Hours() / 24)
}
