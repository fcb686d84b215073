package logic

import (
	"time"

	"github.com/blues/vds/internal/model"
)

// projectTransitions 项目状态流转表。closed 为终态，不允许任何后续流转。
var projectTransitions = map[model.ProjectStatus][]model.ProjectStatus{
	model.ProjectStatusPending: {model.ProjectStatusActive, model.ProjectStatusClosed},
	model.ProjectStatusActive:  {model.ProjectStatusClosed},
	model.ProjectStatusClosed:  {},
}

// CanTransition 判断状态流转是否合法。同状态流转视为合法的空操作。
func CanTransition(from, to model.ProjectStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range projectTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition 执行项目状态流转并持久化副作用：
// 首次进入 active 记录发布时间，进入 closed 记录关闭时间。
// 同状态流转直接返回成功，不写库。
func (p *ProjectLogic) Transition(project *model.ProjectModel, to model.ProjectStatus) error {
	if project.Status == to {
		return nil
	}
	if !CanTransition(project.Status, to) {
		return ErrIllegalTransition
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status": to,
	}

	if to == model.ProjectStatusActive && project.PublishedAt == nil {
		updates["published_at"] = now
	}
	if to == model.ProjectStatusClosed {
		updates["closed_at"] = now
	}

	if err := p.db.Model(project).Updates(updates).Error; err != nil {
		return err
	}

	project.Status = to
	if to == model.ProjectStatusActive && project.PublishedAt == nil {
		project.PublishedAt = &now
	}
	if to == model.ProjectStatusClosed {
		project.ClosedAt = &now
	}

	return nil
}
