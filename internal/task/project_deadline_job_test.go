package task

import (
	"sync"
	"testing"
	"time"

	"github.com/blues/vds/internal/config"
	"github.com/blues/vds/internal/model"
	"github.com/blues/vds/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// fakeNotifier 收集通知的假实现
type fakeNotifier struct {
	mu            sync.Mutex
	notifications []model.NotificationModel
}

func (f *fakeNotifier) Notify(notification model.NotificationModel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, notification)
}

func (f *fakeNotifier) byKind(kind model.NotificationKind) []model.NotificationModel {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.NotificationModel
	for _, n := range f.notifications {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Task: config.TaskConfig{
			Interval:     60,
			ReminderDays: 3,
		},
	}
}

func createProject(t *testing.T, db *gorm.DB, status model.ProjectStatus, endDate time.Time) *model.ProjectModel {
	t.Helper()
	project := &model.ProjectModel{
		Title:              "Projet terrain",
		PartnerId:          1,
		RequiredVolunteers: 2,
		StartDate:          endDate.AddDate(0, -3, 0),
		EndDate:            endDate,
		Status:             status,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

func TestDeadlineJobClosesOverdueProjects(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}

	yesterday := time.Now().AddDate(0, 0, -1)
	overdue := createProject(t, db, model.ProjectStatusActive, yesterday)
	overduePending := createProject(t, db, model.ProjectStatusPending, yesterday)

	job := NewProjectDeadlineJob(db, testConfig(), notifier)
	job.Execute()

	for _, id := range []int64{overdue.Id, overduePending.Id} {
		var stored model.ProjectModel
		db.First(&stored, id)
		if stored.Status != model.ProjectStatusClosed {
			t.Errorf("project %d status = %s, want closed", id, stored.Status)
		}
		if stored.ClosedAt == nil {
			t.Errorf("project %d should carry a closure date", id)
		}
	}

	if got := notifier.byKind(model.NotificationAutoClosed); len(got) != 2 {
		t.Errorf("auto_closed notifications = %d, want 2", len(got))
	}
}

func TestDeadlineJobIgnoresClosedProjects(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}

	closed := createProject(t, db, model.ProjectStatusClosed, time.Now().AddDate(0, 0, -10))

	job := NewProjectDeadlineJob(db, testConfig(), notifier)
	job.Execute()

	var stored model.ProjectModel
	db.First(&stored, closed.Id)
	if stored.ClosedAt != nil {
		t.Error("already closed project should not be touched by the scan")
	}
	if len(notifier.notifications) != 0 {
		t.Errorf("notifications = %d, want 0", len(notifier.notifications))
	}
}

func TestDeadlineJobRemindsUpcomingDeadlines(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}

	// 今天深夜到期：提醒但不关闭
	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	dueToday := createProject(t, db, model.ProjectStatusActive, endOfToday)

	// 恰好3天后到期：提醒
	dueInThree := createProject(t, db, model.ProjectStatusActive, endOfToday.AddDate(0, 0, 3))

	// 2天后到期：不提醒
	dueInTwo := createProject(t, db, model.ProjectStatusActive, endOfToday.AddDate(0, 0, 2))

	job := NewProjectDeadlineJob(db, testConfig(), notifier)
	job.Execute()

	reminders := notifier.byKind(model.NotificationDeadlineReminder)
	if len(reminders) != 2 {
		t.Fatalf("reminders = %d, want 2", len(reminders))
	}
	remindedIds := map[int64]bool{}
	for _, n := range reminders {
		remindedIds[n.ProjectId] = true
	}
	if !remindedIds[dueToday.Id] || !remindedIds[dueInThree.Id] {
		t.Errorf("reminded projects = %v, want %d and %d", remindedIds, dueToday.Id, dueInThree.Id)
	}
	if remindedIds[dueInTwo.Id] {
		t.Error("project due in 2 days should not be reminded")
	}

	// 提醒不改变状态
	for _, id := range []int64{dueToday.Id, dueInThree.Id} {
		var stored model.ProjectModel
		db.First(&stored, id)
		if stored.Status != model.ProjectStatusActive {
			t.Errorf("project %d status = %s, want active (reminder only)", id, stored.Status)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		deadline time.Time
		want     int
	}{
		{time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC), 0},
		{time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC), 3},
		{time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		if got := daysUntil(now, tt.deadline); got != tt.want {
			t.Errorf("daysUntil(%v) = %d, want %d", tt.deadline, got, tt.want)
		}
	}
}
