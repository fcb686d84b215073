package logic

import (
	"errors"
	"fmt"

	"github.com/blues/vds/internal/model"
	"gorm.io/gorm"
)

// CandidatureLogic 申请业务逻辑
type CandidatureLogic struct {
	db *gorm.DB
}

// NewCandidatureLogic 创建申请业务逻辑
func NewCandidatureLogic(db *gorm.DB) *CandidatureLogic {
	return &CandidatureLogic{db: db}
}

// SubmitCandidature 提交申请，初始状态为 pending
func (c *CandidatureLogic) SubmitCandidature(candidature *model.CandidatureModel) error {
	if err := c.validateCandidature(candidature); err != nil {
		return err
	}

	// 检查项目是否存在且正在进行中
	var project model.ProjectModel
	if err := c.db.First(&project, candidature.ProjectId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	if project.Status != model.ProjectStatusActive {
		return errors.New("项目不在进行中，无法接受申请")
	}

	candidature.Status = model.CandidatureStatusPending

	if err := c.db.Create(candidature).Error; err != nil {
		return err
	}

	return nil
}

// GetCandidature 获取申请详情
func (c *CandidatureLogic) GetCandidature(id int64) (*model.CandidatureModel, error) {
	var candidature model.CandidatureModel
	if err := c.db.First(&candidature, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidatureNotFound
		}
		return nil, fmt.Errorf("获取申请详情失败: %w", err)
	}
	return &candidature, nil
}

// GetCandidatures 获取申请列表，支持按项目和状态过滤
func (c *CandidatureLogic) GetCandidatures(projectId int64, status string, page, pageSize int) ([]model.CandidatureModel, int64, error) {
	var candidatures []model.CandidatureModel
	var total int64

	query := c.db.Model(&model.CandidatureModel{})
	if projectId > 0 {
		query = query.Where("project_id = ?", projectId)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&candidatures).Error; err != nil {
		return nil, 0, err
	}

	return candidatures, total, nil
}

// RejectCandidature 拒绝申请
func (c *CandidatureLogic) RejectCandidature(id int64) (*model.CandidatureModel, error) {
	return c.UpdateStatus(id, model.CandidatureStatusRejected)
}

// UpdateStatus 更新申请状态（pending / interview / accepted / rejected）
func (c *CandidatureLogic) UpdateStatus(id int64, status model.CandidatureStatus) (*model.CandidatureModel, error) {
	candidature, err := c.GetCandidature(id)
	if err != nil {
		return nil, err
	}

	if err := c.db.Model(candidature).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("更新申请状态失败: %w", err)
	}
	candidature.Status = status

	return candidature, nil
}

// ListOrphanAccepted 列出已录取但没有对应在岗派遣记录的申请。
// 名额不足导致派遣失败时申请仍保持 accepted，需要人工对账处理。
func (c *CandidatureLogic) ListOrphanAccepted() ([]model.CandidatureModel, error) {
	var candidatures []model.CandidatureModel
	err := c.db.Where("status = ?", model.CandidatureStatusAccepted).
		Where("NOT EXISTS (?)", c.db.Model(&model.AffectationModel{}).
			Select("1").
			Where("affectation.volunteer_id = candidature.volunteer_id").
			Where("affectation.project_id = candidature.project_id").
			Where("affectation.status = ?", model.AffectationStatusActive)).
		Order("updated_at ASC").
		Find(&candidatures).Error
	if err != nil {
		return nil, fmt.Errorf("获取待对账申请列表失败: %w", err)
	}
	return candidatures, nil
}

// validateCandidature 验证申请数据
func (c *CandidatureLogic) validateCandidature(candidature *model.CandidatureModel) error {
	if candidature.ProjectId == 0 {
		return errors.New("项目ID不能为空")
	}
	if candidature.Name == "" {
		return errors.New("申请人姓名不能为空")
	}
	if candidature.Email == "" {
		return errors.New("申请人邮箱不能为空")
	}
	return nil
}
