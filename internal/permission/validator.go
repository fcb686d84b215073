package permission

import (
	"errors"
	"fmt"

	"github.com/blues/vds/internal/model"
)

// ErrDenied 权限校验未通过
var ErrDenied = errors.New("没有执行该操作的权限")

// ActionKind 需要授权的操作类型
type ActionKind string

const (
	ActionSubmitProject       ActionKind = "submit-project"        // 提交项目
	ActionManageCandidates    ActionKind = "manage-candidates"     // 管理申请
	ActionViewStatistics      ActionKind = "view-statistics"       // 查看统计
	ActionViewReports         ActionKind = "view-reports"          // 查看报表
	ActionAccessFinancialZone ActionKind = "access-financial-zone" // 访问金融专区
	ActionFinancialDashboard  ActionKind = "financial-dashboard"   // 金融伙伴面板
	ActionHostDashboard       ActionKind = "host-dashboard"        // 接收机构面板
)

// ValidateAccess 校验机构能否执行指定操作。
// 停用账号拒绝一切操作；其余操作按类型集合归并后的能力表判定。
// 机构可创建的项目数量没有上限。
func ValidateAccess(partner *model.PartnerModel, action ActionKind) error {
	if partner == nil {
		return fmt.Errorf("%w: 机构不存在", ErrDenied)
	}
	if !partner.Active {
		return fmt.Errorf("%w: 账号已停用", ErrDenied)
	}

	policy := EffectivePolicy(partner.Types)
	roles := ResolveRoles(partner.Types)

	allowed := false
	switch action {
	case ActionSubmitProject:
		allowed = policy.CanCreateProjects
	case ActionManageCandidates:
		allowed = policy.CanManageVolunteers
	case ActionViewStatistics:
		allowed = policy.CanViewStatistics
	case ActionViewReports:
		allowed = policy.CanViewReports
	case ActionAccessFinancialZone:
		allowed = policy.HasFinancialZoneAccess
	case ActionFinancialDashboard:
		allowed = roles.IsFinancialPartner
	case ActionHostDashboard:
		allowed = roles.IsHostStructure
	default:
		return fmt.Errorf("%w: 未知的操作 %s", ErrDenied, action)
	}

	if !allowed {
		return fmt.Errorf("%w: 机构类型不允许执行 %s", ErrDenied, action)
	}
	return nil
}
