package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/vds/internal/logic"
	"github.com/blues/vds/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VolunteerHandler struct {
	volunteerLogic *logic.VolunteerLogic
}

func NewVolunteerHandler(db *gorm.DB) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerLogic: logic.NewVolunteerLogic(db),
	}
}

// CreateVolunteer 志愿者自主注册
func (h *VolunteerHandler) CreateVolunteer(c *gin.Context) {
	var volunteer model.VolunteerModel
	if err := c.ShouldBindJSON(&volunteer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.volunteerLogic.CreateVolunteer(&volunteer); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "志愿者注册成功",
		"volunteer": volunteer,
	})
}

// GetVolunteer 获取志愿者详情
func (h *VolunteerHandler) GetVolunteer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的志愿者ID"})
		return
	}

	volunteer, err := h.volunteerLogic.GetVolunteer(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteer": volunteer})
}

// GetVolunteers 获取志愿者列表
func (h *VolunteerHandler) GetVolunteers(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	volunteers, total, err := h.volunteerLogic.GetVolunteers(status, page, pageSize)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"volunteers": volunteers,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}
