package logic

import (
	"errors"
	"fmt"

	"github.com/blues/vds/internal/model"
	"github.com/blues/vds/internal/permission"
	"gorm.io/gorm"
)

// PartnerLogic 合作伙伴业务逻辑
type PartnerLogic struct {
	db *gorm.DB
}

// NewPartnerLogic 创建合作伙伴业务逻辑
func NewPartnerLogic(db *gorm.DB) *PartnerLogic {
	return &PartnerLogic{db: db}
}

// RegisterPartner 注册合作伙伴
func (p *PartnerLogic) RegisterPartner(partner *model.PartnerModel) error {
	if err := p.validateTypes(partner.Types); err != nil {
		return err
	}
	if partner.Name == "" {
		return errors.New("机构名称不能为空")
	}
	if partner.Email == "" {
		return errors.New("机构邮箱不能为空")
	}

	partner.Active = true

	if err := p.db.Create(partner).Error; err != nil {
		return err
	}

	return nil
}

// GetPartner 获取合作伙伴详情
func (p *PartnerLogic) GetPartner(id int64) (*model.PartnerModel, error) {
	var partner model.PartnerModel
	if err := p.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("获取合作伙伴详情失败: %w", err)
	}
	return &partner, nil
}

// UpdateTypes 修改机构类型集合。权限永远按需从类型推导，这里只需要
// 更新类型本身。
func (p *PartnerLogic) UpdateTypes(id int64, types []model.StructureType) (*model.PartnerModel, error) {
	if err := p.validateTypes(types); err != nil {
		return nil, err
	}

	partner, err := p.GetPartner(id)
	if err != nil {
		return nil, err
	}

	if err := p.db.Model(partner).Update("types", types).Error; err != nil {
		return nil, fmt.Errorf("更新机构类型失败: %w", err)
	}
	partner.Types = types

	return partner, nil
}

// SetActive 启用或停用账号
func (p *PartnerLogic) SetActive(id int64, active bool) (*model.PartnerModel, error) {
	partner, err := p.GetPartner(id)
	if err != nil {
		return nil, err
	}

	if err := p.db.Model(partner).Update("active", active).Error; err != nil {
		return nil, err
	}
	partner.Active = active

	return partner, nil
}

// GetPartnerPermissions 获取机构的角色和有效能力
func (p *PartnerLogic) GetPartnerPermissions(id int64) (permission.RoleSet, permission.Policy, error) {
	partner, err := p.GetPartner(id)
	if err != nil {
		return permission.RoleSet{}, permission.Policy{}, err
	}

	return permission.ResolveRoles(partner.Types), permission.EffectivePolicy(partner.Types), nil
}

// validateTypes 验证机构类型集合
func (p *PartnerLogic) validateTypes(types []model.StructureType) error {
	if len(types) == 0 {
		return errors.New("机构类型不能为空")
	}
	for _, t := range types {
		if !model.ValidStructureType(t) {
			return fmt.Errorf("未知的机构类型: %s", t)
		}
	}
	return nil
}
