package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/vds/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AffectationHandler struct {
	affectationLogic *logic.AffectationLogic
}

func NewAffectationHandler(db *gorm.DB) *AffectationHandler {
	return &AffectationHandler{
		affectationLogic: logic.NewAffectationLogic(db),
	}
}

// GetProjectAffectations 获取项目的派遣记录
func (h *AffectationHandler) GetProjectAffectations(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	affectations, total, err := h.affectationLogic.GetProjectAffectations(projectId, page, pageSize)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"affectations": affectations,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

// Unassign 撤销派遣并释放名额
func (h *AffectationHandler) Unassign(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}
	affectationId, err := strconv.ParseInt(c.Param("aid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的派遣记录ID"})
		return
	}

	if err := h.affectationLogic.Unassign(projectId, affectationId); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "派遣已撤销"})
}
