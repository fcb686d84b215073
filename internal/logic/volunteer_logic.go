package logic

import (
	"errors"
	"fmt"

	"github.com/blues/vds/internal/model"
	"gorm.io/gorm"
)

// VolunteerLogic 志愿者业务逻辑
type VolunteerLogic struct {
	db *gorm.DB
}

// NewVolunteerLogic 创建志愿者业务逻辑
func NewVolunteerLogic(db *gorm.DB) *VolunteerLogic {
	return &VolunteerLogic{db: db}
}

// CreateVolunteer 志愿者自主注册
func (v *VolunteerLogic) CreateVolunteer(volunteer *model.VolunteerModel) error {
	if volunteer.Name == "" {
		return errors.New("志愿者姓名不能为空")
	}
	if volunteer.Email == "" {
		return errors.New("志愿者邮箱不能为空")
	}

	if volunteer.Status == "" {
		volunteer.Status = model.VolunteerStatusCandidat
	}

	if err := v.db.Create(volunteer).Error; err != nil {
		return err
	}

	return nil
}

// GetVolunteer 获取志愿者详情
func (v *VolunteerLogic) GetVolunteer(id int64) (*model.VolunteerModel, error) {
	var volunteer model.VolunteerModel
	if err := v.db.First(&volunteer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("获取志愿者详情失败: %w", err)
	}
	return &volunteer, nil
}

// GetVolunteers 获取志愿者列表，支持按状态过滤
func (v *VolunteerLogic) GetVolunteers(status string, page, pageSize int) ([]model.VolunteerModel, int64, error) {
	var volunteers []model.VolunteerModel
	var total int64

	query := v.db.Model(&model.VolunteerModel{})
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
		Find(&volunteers).Error; err != nil {
		return nil, 0, err
	}

	return volunteers, total, nil
}

// findOrCreateVolunteer 按申请上的志愿者ID查找志愿者，找不到时用申请快照
// 补建一条 candidat 状态的志愿者档案。这是一条显式的恢复路径：志愿者
// 入驻流程完成之前提交的申请也能正常录取。
func findOrCreateVolunteer(tx *gorm.DB, candidature *model.CandidatureModel) (*model.VolunteerModel, error) {
	var volunteer model.VolunteerModel
	err := tx.First(&volunteer, candidature.VolunteerId).Error
	if err == nil {
		return &volunteer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查找志愿者失败: %w", err)
	}

	volunteer = model.VolunteerModel{
		Name:           candidature.Name,
		Email:          candidature.Email,
		Phone:          candidature.Phone,
		DocumentType:   candidature.DocumentType,
		DocumentNumber: candidature.DocumentNumber,
		Skills:         candidature.Skills,
		Motivation:     candidature.Motivation,
		Status:         model.VolunteerStatusCandidat,
	}
	if err := tx.Create(&volunteer).Error; err != nil {
		return nil, fmt.Errorf("补建志愿者档案失败: %w", err)
	}

	return &volunteer, nil
}
