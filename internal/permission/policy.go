package permission

import (
	"github.com/blues/vds/internal/model"
)

// Policy 单个机构类型的能力配置
type Policy struct {
	CanCreateProjects      bool `json:"can_create_projects"`
	CanManageVolunteers    bool `json:"can_manage_volunteers"`
	CanViewStatistics      bool `json:"can_view_statistics"`
	CanViewReports         bool `json:"can_view_reports"`
	HasFinancialZoneAccess bool `json:"has_financial_zone_access"`
}

// policyTable 机构类型对应的静态能力表。
// 权限永远按需从类型集合推导，不单独存储、不手工修改。
var policyTable = map[model.StructureType]Policy{
	model.StructureAdministrationPublique: {
		CanCreateProjects:   true,
		CanManageVolunteers: true,
		CanViewStatistics:   true,
		CanViewReports:      true,
	},
	model.StructureCollectivitePublique: {
		CanCreateProjects:   true,
		CanManageVolunteers: true,
		CanViewStatistics:   true,
		CanViewReports:      true,
	},
	model.StructureSocieteCivile: {
		CanCreateProjects:   true,
		CanManageVolunteers: true,
		CanViewStatistics:   true,
		CanViewReports:      true,
	},
	model.StructureSecteurPrive: {
		CanCreateProjects:   true,
		CanManageVolunteers: true,
		CanViewStatistics:   true,
		CanViewReports:      true,
	},
	model.StructureInstitutionAcademique: {
		CanCreateProjects:   true,
		CanManageVolunteers: true,
		CanViewStatistics:   true,
		CanViewReports:      true,
	},
	model.StructurePTF: {
		CanViewStatistics:      true,
		CanViewReports:         true,
		HasFinancialZoneAccess: true,
	},
}

// EffectivePolicy 计算机构的有效能力：对持有的所有类型做逻辑或归并，
// 机构的权限等于其最宽松类型的权限。
func EffectivePolicy(types []model.StructureType) Policy {
	var effective Policy
	for _, t := range types {
		p, ok := policyTable[t]
		if !ok {
			continue
		}
		effective.CanCreateProjects = effective.CanCreateProjects || p.CanCreateProjects
		effective.CanManageVolunteers = effective.CanManageVolunteers || p.CanManageVolunteers
		effective.CanViewStatistics = effective.CanViewStatistics || p.CanViewStatistics
		effective.CanViewReports = effective.CanViewReports || p.CanViewReports
		effective.HasFinancialZoneAccess = effective.HasFinancialZoneAccess || p.HasFinancialZoneAccess
	}
	return effective
}
