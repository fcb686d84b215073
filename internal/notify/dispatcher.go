package notify

import (
	"context"

	"github.com/blues/vds/internal/logger"
	"github.com/blues/vds/internal/model"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// Notifier 通知接口
type Notifier interface {
	Notify(notification model.NotificationModel)
}

// Dispatcher 通知分发器。通知在协程池里异步落库并打日志，
// 关闭分发器时丢弃尚未处理的通知。
type Dispatcher struct {
	db     *gorm.DB
	pool   *ants.Pool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewDispatcher 创建通知分发器
func NewDispatcher(db *gorm.DB, poolSize int) (*Dispatcher, error) {
	if poolSize <= 0 {
		poolSize = 8
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		db:     db,
		pool:   pool,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Notify 提交一条通知。分发器已关闭时直接丢弃。
func (d *Dispatcher) Notify(notification model.NotificationModel) {
	select {
	case <-d.ctx.Done():
		return
	default:
	}

	err := d.pool.Submit(func() {
		select {
		case <-d.ctx.Done():
			// 管理员会话已结束，丢弃待处理通知
			return
		default:
		}

		if err := d.db.Create(&notification).Error; err != nil {
			logger.Error("Failed to persist notification for project %d: %v",
				notification.ProjectId, err)
			return
		}
		logger.Info("Notification [%s] project %d: %s",
			notification.Kind, notification.ProjectId, notification.Message)
	})
	if err != nil {
		logger.Error("Failed to submit notification: %v", err)
	}
}

// Close 关闭分发器并丢弃待处理通知
func (d *Dispatcher) Close() {
	d.cancel()
	d.pool.Release()
}
