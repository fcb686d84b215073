package task

import (
	"sync"

	"github.com/blues/vds/internal/config"
	"github.com/blues/vds/internal/logger"
	"github.com/blues/vds/internal/notify"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Manager 截止日期监控器。不是模块级单例：由管理员会话显式创建和销毁，
// 会话结束后调度器停止，待处理的通知随分发器一起丢弃。
type Manager struct {
	scheduler  gocron.Scheduler
	db         *gorm.DB
	config     *config.Config
	dispatcher *notify.Dispatcher

	mu      sync.Mutex
	started bool
}

// NewManager 创建截止日期监控器
func NewManager(db *gorm.DB, cfg *config.Config) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	dispatcher, err := notify.NewDispatcher(db, cfg.Task.PoolSize)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler:  s,
		db:         db,
		config:     cfg,
		dispatcher: dispatcher,
	}, nil
}

// Start 启动监控。注册后立即执行一次扫描，之后按固定间隔重复。
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return nil
	}

	job := NewProjectDeadlineJob(m.db, m.config, m.dispatcher)
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
		return err
	}

	m.scheduler.Start()
	m.started = true

	logger.Info("Deadline monitor started")
	return nil
}

// Stop 停止监控并丢弃待处理通知
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	m.dispatcher.Close()
	m.started = false

	logger.Info("Deadline monitor stopped")
}
