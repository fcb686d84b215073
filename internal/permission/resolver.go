package permission

import (
	"github.com/blues/vds/internal/model"
)

// RoleSet 机构的角色集合
type RoleSet struct {
	IsFinancialPartner bool `json:"is_financial_partner"` // 技术与金融伙伴
	IsHostStructure    bool `json:"is_host_structure"`    // 接收志愿者的机构
	HasMultipleRoles   bool `json:"has_multiple_roles"`   // 同时持有两种角色
}

// ResolveRoles 从机构的类型集合推导角色。
// 包含 PTF 类型即为金融伙伴；包含任意非 PTF 类型即为接收机构；
// 两种角色可以同时持有。空类型集合不具备任何角色。
func ResolveRoles(types []model.StructureType) RoleSet {
	var roles RoleSet
	for _, t := range types {
		if !model.ValidStructureType(t) {
			continue
		}
		if t == model.StructurePTF {
			roles.IsFinancialPartner = true
		} else {
			roles.IsHostStructure = true
		}
	}
	roles.HasMultipleRoles = roles.IsFinancialPartner && roles.IsHostStructure
	return roles
}
