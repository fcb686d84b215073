package handler

import (
	"net/http"
	"sync"

	"github.com/blues/vds/internal/config"
	"github.com/blues/vds/internal/task"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler 管理员会话入口。截止日期监控器跟随管理员会话存在：
// 会话建立时启动，会话结束（或管理员权限被收回）时停止，
// 待处理的通知随之丢弃。
type AdminHandler struct {
	db  *gorm.DB
	cfg *config.Config

	mu      sync.Mutex
	monitor *task.Manager
}

func NewAdminHandler(db *gorm.DB, cfg *config.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// OpenSession 建立管理员会话并启动截止日期监控器。
// 身份校验由外部身份服务完成，这里只管理监控器生命周期。
func (h *AdminHandler) OpenSession(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.monitor != nil {
		c.JSON(http.StatusOK, gin.H{"message": "监控器已在运行"})
		return
	}

	monitor, err := task.NewManager(h.db, h.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := monitor.Start(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.monitor = monitor
	c.JSON(http.StatusCreated, gin.H{"message": "管理员会话已建立，监控器已启动"})
}

// CloseSession 结束管理员会话并停止监控器
func (h *AdminHandler) CloseSession(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.monitor == nil {
		c.JSON(http.StatusOK, gin.H{"message": "监控器未在运行"})
		return
	}

	h.monitor.Stop()
	h.monitor = nil

	c.JSON(http.StatusOK, gin.H{"message": "管理员会话已结束，监控器已停止"})
}

// Shutdown 服务退出时停止监控器
func (h *AdminHandler) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.monitor != nil {
		h.monitor.Stop()
		h.monitor = nil
	}
}
