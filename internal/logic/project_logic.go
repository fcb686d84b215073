package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/vds/internal/model"
	"github.com/blues/vds/internal/permission"
	"gorm.io/gorm"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db *gorm.DB
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{db: db}
}

// SubmitProject 合作伙伴提交项目，初始状态为 pending
func (p *ProjectLogic) SubmitProject(project *model.ProjectModel) error {
	// 校验提交权限
	var partner model.PartnerModel
	if err := p.db.First(&partner, project.PartnerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartnerNotFound
		}
		return err
	}
	if err := permission.ValidateAccess(&partner, permission.ActionSubmitProject); err != nil {
		return err
	}

	// 验证项目数据
	if err := p.validateProject(project); err != nil {
		return err
	}

	// 设置默认值
	project.Status = model.ProjectStatusPending
	project.CurrentVolunteers = 0
	project.PublishedAt = nil
	project.ClosedAt = nil

	if err := p.db.Create(project).Error; err != nil {
		return err
	}

	return nil
}

// ValidateProject 审核通过项目，流转到 active
func (p *ProjectLogic) ValidateProject(id int64) (*model.ProjectModel, error) {
	project, err := p.GetProject(id)
	if err != nil {
		return nil, err
	}
	if err := p.Transition(project, model.ProjectStatusActive); err != nil {
		return nil, err
	}
	return project, nil
}

// CloseProject 关闭项目，流转到 closed
func (p *ProjectLogic) CloseProject(id int64) (*model.ProjectModel, error) {
	project, err := p.GetProject(id)
	if err != nil {
		return nil, err
	}
	if err := p.Transition(project, model.ProjectStatusClosed); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject 获取项目详情
func (p *ProjectLogic) GetProject(id int64) (*model.ProjectModel, error) {
	var project model.ProjectModel
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}
	return &project, nil
}

// GetProjects 获取项目列表，支持按状态和合作伙伴过滤
func (p *ProjectLogic) GetProjects(status string, partnerId int64, page, pageSize int) ([]model.ProjectModel, int64, error) {
	var projects []model.ProjectModel
	var total int64

	query := p.db.Model(&model.ProjectModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if partnerId > 0 {
		query = query.Where("partner_id = ?", partnerId)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("获取项目列表失败: %w", err)
	}

	return projects, total, nil
}

// GetPublicProjects 获取公开项目列表，只返回进行中的项目
func (p *ProjectLogic) GetPublicProjects() ([]model.ProjectModel, error) {
	var projects []model.ProjectModel
	if err := p.db.Where("status = ?", model.ProjectStatusActive).
		Order("start_date ASC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取公开项目列表失败: %w", err)
	}
	return projects, nil
}

// UpdateProject 更新项目字段。已关闭的项目拒绝任何修改。
func (p *ProjectLogic) UpdateProject(id int64, updates map[string]interface{}) error {
	project, err := p.GetProject(id)
	if err != nil {
		return err
	}
	if project.Status == model.ProjectStatusClosed {
		return ErrProjectClosed
	}

	if err := p.db.Model(project).Updates(updates).Error; err != nil {
		return fmt.Errorf("更新项目失败: %w", err)
	}
	return nil
}

// GetProjectStats 获取项目统计信息
func (p *ProjectLogic) GetProjectStats(id int64) (map[string]interface{}, error) {
	project, err := p.GetProject(id)
	if err != nil {
		return nil, err
	}

	// 统计申请数量
	var candidatureCount int64
	p.db.Model(&model.CandidatureModel{}).
		Where("project_id = ?", id).
		Count(&candidatureCount)

	var acceptedCount int64
	p.db.Model(&model.CandidatureModel{}).
		Where("project_id = ? AND status = ?", id, model.CandidatureStatusAccepted).
		Count(&acceptedCount)

	// 统计在岗派遣数量
	var activeAffectations int64
	p.db.Model(&model.AffectationModel{}).
		Where("project_id = ? AND status = ?", id, model.AffectationStatusActive).
		Count(&activeAffectations)

	// 计算名额占用率
	fillRate := float64(0)
	if project.RequiredVolunteers > 0 {
		fillRate = float64(project.CurrentVolunteers) / float64(project.RequiredVolunteers) * 100
	}

	// 计算剩余时间
	remainingTime := time.Duration(0)
	if project.Status == model.ProjectStatusActive && time.Now().Before(project.EndDate) {
		remainingTime = time.Until(project.EndDate)
	}

	return map[string]interface{}{
		"project_id":          project.Id,
		"status":              string(project.Status),
		"required_volunteers": project.RequiredVolunteers,
		"current_volunteers":  project.CurrentVolunteers,
		"fill_rate":           fillRate,
		"candidature_count":   candidatureCount,
		"accepted_count":      acceptedCount,
		"active_affectations": activeAffectations,
		"remaining_time":      remainingTime.String(),
	}, nil
}

// validateProject 验证项目数据
func (p *ProjectLogic) validateProject(project *model.ProjectModel) error {
	if project.Title == "" {
		return errors.New("项目标题不能为空")
	}
	if project.RequiredVolunteers <= 0 {
		return errors.New("所需志愿者人数必须大于0")
	}
	if project.StartDate.After(project.EndDate) {
		return errors.New("开始日期不能晚于结束日期")
	}
	if !project.ApplicationDeadline.IsZero() && project.ApplicationDeadline.After(project.EndDate) {
		return errors.New("报名截止日期不能晚于结束日期")
	}
	return nil
}
