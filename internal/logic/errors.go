package logic

import (
	"errors"
)

// 业务错误。调用方用 errors.Is 区分错误类型，核心内部不做任何自动重试。
var (
	ErrProjectNotFound     = errors.New("项目不存在")
	ErrCandidatureNotFound = errors.New("申请不存在")
	ErrVolunteerNotFound   = errors.New("志愿者不存在")
	ErrPartnerNotFound     = errors.New("合作伙伴不存在")
	ErrAffectationNotFound = errors.New("派遣记录不存在")

	// ErrIllegalTransition 状态机不允许的流转
	ErrIllegalTransition = errors.New("非法的状态流转")

	// ErrCapacityExceeded 项目名额已满。此时申请仍保持 accepted 状态，
	// 需要人工对账处理（见 ListOrphanAccepted）。
	ErrCapacityExceeded = errors.New("项目名额已满")

	// ErrMissingLink 申请缺少项目或志愿者关联
	ErrMissingLink = errors.New("申请缺少项目或志愿者关联")

	// ErrProjectClosed 已关闭的项目不允许修改
	ErrProjectClosed = errors.New("项目已关闭，不允许修改")
)
