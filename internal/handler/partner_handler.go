package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/vds/internal/logic"
	"github.com/blues/vds/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PartnerHandler struct {
	partnerLogic *logic.PartnerLogic
}

func NewPartnerHandler(db *gorm.DB) *PartnerHandler {
	return &PartnerHandler{
		partnerLogic: logic.NewPartnerLogic(db),
	}
}

// RegisterPartner 注册合作伙伴
func (h *PartnerHandler) RegisterPartner(c *gin.Context) {
	var partner model.PartnerModel
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.partnerLogic.RegisterPartner(&partner); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "机构注册成功",
		"partner": partner,
	})
}

// GetPartner 获取合作伙伴详情
func (h *PartnerHandler) GetPartner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的机构ID"})
		return
	}

	partner, err := h.partnerLogic.GetPartner(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

// UpdatePartnerTypes 修改机构类型集合，权限随类型自动重新推导
func (h *PartnerHandler) UpdatePartnerTypes(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的机构ID"})
		return
	}

	var body struct {
		Types []model.StructureType `json:"types" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner, err := h.partnerLogic.UpdateTypes(id, body.Types)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "机构类型更新成功",
		"partner": partner,
	})
}

// GetPartnerPermissions 获取机构的角色和有效能力
func (h *PartnerHandler) GetPartnerPermissions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的机构ID"})
		return
	}

	roles, policy, err := h.partnerLogic.GetPartnerPermissions(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roles":  roles,
		"policy": policy,
	})
}
