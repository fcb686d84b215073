package notify

import (
	"testing"
	"time"

	"github.com/blues/vds/internal/model"
	"github.com/blues/vds/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

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

func countNotifications(db *gorm.DB) int64 {
	var count int64
	db.Model(&model.NotificationModel{}).Count(&count)
	return count
}

func TestDispatcherPersistsNotification(t *testing.T) {
	db := newTestDB(t)
	dispatcher, err := NewDispatcher(db, 2)
	if err != nil {
		t.Fatalf("NewDispatcher failed: %v", err)
	}
	defer dispatcher.Close()

	dispatcher.Notify(model.NotificationModel{
		ProjectId: 1,
		Kind:      model.NotificationDeadlineReminder,
		Message:   "projet bientôt à échéance",
	})

	// 异步落库，轮询等待
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if countNotifications(db) == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("notification count = %d, want 1", countNotifications(db))
}

func TestDispatcherDiscardsAfterClose(t *testing.T) {
	db := newTestDB(t)
	dispatcher, err := NewDispatcher(db, 2)
	if err != nil {
		t.Fatalf("NewDispatcher failed: %v", err)
	}

	dispatcher.Close()
	dispatcher.Notify(model.NotificationModel{
		ProjectId: 1,
		Kind:      model.NotificationAutoClosed,
		Message:   "should be discarded",
	})

	time.Sleep(50 * time.Millisecond)
	if got := countNotifications(db); got != 0 {
		t.Errorf("notification count after close = %d, want 0", got)
	}
}
