package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/vds/internal/logger"
	"github.com/blues/vds/internal/model"
	"gorm.io/gorm"
)

// AffectationLogic 派遣业务逻辑
type AffectationLogic struct {
	db *gorm.DB
}

// NewAffectationLogic 创建派遣业务逻辑
func NewAffectationLogic(db *gorm.DB) *AffectationLogic {
	return &AffectationLogic{db: db}
}

// AcceptResult 录取并派遣的结果
type AcceptResult struct {
	Candidature *model.CandidatureModel `json:"candidature"`
	Volunteer   *model.VolunteerModel   `json:"volunteer"`
	// AlreadyAssigned 为 true 时 Affectation 为空，表示该志愿者此前已被
	// 派遣到该项目，本次调用是幂等的空操作
	Affectation     *model.AffectationModel `json:"affectation"`
	AlreadyAssigned bool                    `json:"already_assigned"`
	Message         string                  `json:"message"`
}

// AcceptAndAssign 录取申请并创建派遣记录。
//
// 申请状态先单独落库为 accepted，随后在一个事务内完成志愿者档案解析、
// 派遣创建和名额占用。名额已满时申请保持 accepted 不回滚，这是沿用
// 既有流程的部分提交语义，此类申请通过 ListOrphanAccepted 人工对账。
func (a *AffectationLogic) AcceptAndAssign(candidatureId int64) (*AcceptResult, error) {
	// 加载申请
	var candidature model.CandidatureModel
	if err := a.db.First(&candidature, candidatureId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidatureNotFound
		}
		return nil, err
	}

	// 缺少项目或志愿者关联的申请无法派遣
	if candidature.ProjectId == 0 || candidature.VolunteerId == 0 {
		return nil, ErrMissingLink
	}

	// 同一邮箱在同一项目上已有另一条 accepted 申请时只告警，不拦截
	var duplicates int64
	a.db.Model(&model.CandidatureModel{}).
		Where("project_id = ? AND email = ? AND status = ? AND id <> ?",
			candidature.ProjectId, candidature.Email, model.CandidatureStatusAccepted, candidature.Id).
		Count(&duplicates)
	if duplicates > 0 {
		logger.Warn("Email %s already holds %d accepted candidature(s) for project %d",
			candidature.Email, duplicates, candidature.ProjectId)
	}

	// 先录取申请。后续步骤失败时该状态保留。
	if err := a.db.Model(&candidature).Update("status", model.CandidatureStatusAccepted).Error; err != nil {
		return nil, fmt.Errorf("更新申请状态失败: %w", err)
	}
	candidature.Status = model.CandidatureStatusAccepted

	// 开始事务
	tx := a.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 解析志愿者，档案不存在时用申请快照补建
	volunteer, err := findOrCreateVolunteer(tx, &candidature)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// 补建档案后把申请关联到新档案
	if volunteer.Id != candidature.VolunteerId {
		if err := tx.Model(&candidature).Update("volunteer_id", volunteer.Id).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		candidature.VolunteerId = volunteer.Id
	}

	// 已有在岗派遣记录时幂等返回，不重复占用名额
	var existing model.AffectationModel
	err = tx.Where("volunteer_id = ? AND project_id = ? AND status = ?",
		volunteer.Id, candidature.ProjectId, model.AffectationStatusActive).
		First(&existing).Error
	if err == nil {
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
		return &AcceptResult{
			Candidature:     &candidature,
			Volunteer:       volunteer,
			Affectation:     nil,
			AlreadyAssigned: true,
			Message:         "already assigned",
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, err
	}

	// 检查项目是否存在
	var project model.ProjectModel
	if err := tx.First(&project, candidature.ProjectId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	// 创建派遣记录
	affectation := model.AffectationModel{
		VolunteerId: volunteer.Id,
		ProjectId:   project.Id,
		AssignedAt:  time.Now(),
		Role:        candidature.RequestedRole,
		Status:      model.AffectationStatusActive,
	}
	if err := tx.Create(&affectation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// 占用名额。带条件的原子自增保证并发下不超额：
	// 名额已满时更新不到任何行，整个事务回滚，派遣记录随之撤销。
	result := tx.Model(&model.ProjectModel{}).
		Where("id = ? AND current_volunteers < required_volunteers", project.Id).
		Update("current_volunteers", gorm.Expr("current_volunteers + 1"))
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrCapacityExceeded
	}

	// 志愿者进入在岗状态
	if err := tx.Model(volunteer).Update("status", model.VolunteerStatusActive).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	volunteer.Status = model.VolunteerStatusActive

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	project.CurrentVolunteers++

	return &AcceptResult{
		Candidature: &candidature,
		Volunteer:   volunteer,
		Affectation: &affectation,
		Message:     "申请已录取，派遣记录已创建",
	}, nil
}

// Unassign 撤销派遣并释放名额。两侧更新在同一事务内完成，要么同时生效
// 要么整体失败。
func (a *AffectationLogic) Unassign(projectId, affectationId int64) error {
	tx := a.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var affectation model.AffectationModel
	if err := tx.Where("id = ? AND project_id = ?", affectationId, projectId).
		First(&affectation).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAffectationNotFound
		}
		return err
	}

	// 只有在岗的派遣才占用名额
	releaseSlot := affectation.Status == model.AffectationStatusActive

	now := time.Now()
	if err := tx.Model(&affectation).Updates(map[string]interface{}{
		"status":   model.AffectationStatusCancelled,
		"ended_at": now,
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if releaseSlot {
		// 释放名额，下限为0
		if err := tx.Model(&model.ProjectModel{}).
			Where("id = ? AND current_volunteers > 0", projectId).
			Update("current_volunteers", gorm.Expr("current_volunteers - 1")).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	return nil
}

// GetProjectAffectations 获取项目的派遣记录
func (a *AffectationLogic) GetProjectAffectations(projectId int64, page, pageSize int) ([]model.AffectationModel, int64, error) {
	var affectations []model.AffectationModel
	var total int64

	query := a.db.Model(&model.AffectationModel{}).Where("project_id = ?", projectId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).
		Limit(pageSize).
		Order("assigned_at DESC").
		Find(&affectations).Error; err != nil {
		return nil, 0, err
	}

	return affectations, total, nil
}
