package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/vds/internal/logic"
	"github.com/blues/vds/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CandidatureHandler struct {
	candidatureLogic *logic.CandidatureLogic
	affectationLogic *logic.AffectationLogic
}

func NewCandidatureHandler(db *gorm.DB) *CandidatureHandler {
	return &CandidatureHandler{
		candidatureLogic: logic.NewCandidatureLogic(db),
		affectationLogic: logic.NewAffectationLogic(db),
	}
}

// SubmitCandidature 提交申请
func (h *CandidatureHandler) SubmitCandidature(c *gin.Context) {
	var candidature model.CandidatureModel
	if err := c.ShouldBindJSON(&candidature); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.candidatureLogic.SubmitCandidature(&candidature); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "申请提交成功",
		"candidature": candidature,
	})
}

// GetCandidatures 获取申请列表
func (h *CandidatureHandler) GetCandidatures(c *gin.Context) {
	projectId, _ := strconv.ParseInt(c.DefaultQuery("project_id", "0"), 10, 64)
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	candidatures, total, err := h.candidatureLogic.GetCandidatures(projectId, status, page, pageSize)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidatures": candidatures,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

// AcceptCandidature 录取申请并创建派遣记录
func (h *CandidatureHandler) AcceptCandidature(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的申请ID"})
		return
	}

	result, err := h.affectationLogic.AcceptAndAssign(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"result":  result,
	})
}

// RejectCandidature 拒绝申请
func (h *CandidatureHandler) RejectCandidature(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的申请ID"})
		return
	}

	candidature, err := h.candidatureLogic.RejectCandidature(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "申请已拒绝",
		"candidature": candidature,
	})
}

// UpdateCandidatureStatus 更新申请状态
func (h *CandidatureHandler) UpdateCandidatureStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的申请ID"})
		return
	}

	var body struct {
		Status model.CandidatureStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidature, err := h.candidatureLogic.UpdateStatus(id, body.Status)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "申请状态更新成功",
		"candidature": candidature,
	})
}

// GetOrphanAccepted 获取待对账的申请（已录取但未派遣）
func (h *CandidatureHandler) GetOrphanAccepted(c *gin.Context) {
	candidatures, err := h.candidatureLogic.ListOrphanAccepted()
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidatures": candidatures})
}
