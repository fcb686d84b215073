package handler

import (
	"errors"
	"net/http"

	"github.com/blues/vds/internal/logic"
	"github.com/blues/vds/internal/permission"
)

// statusFromError 把业务错误映射为 HTTP 状态码
func statusFromError(err error) int {
	switch {
	case errors.Is(err, logic.ErrProjectNotFound),
		errors.Is(err, logic.ErrCandidatureNotFound),
		errors.Is(err, logic.ErrVolunteerNotFound),
		errors.Is(err, logic.ErrPartnerNotFound),
		errors.Is(err, logic.ErrAffectationNotFound):
		return http.StatusNotFound
	case errors.Is(err, logic.ErrIllegalTransition),
		errors.Is(err, logic.ErrCapacityExceeded),
		errors.Is(err, logic.ErrProjectClosed):
		return http.StatusConflict
	case errors.Is(err, logic.ErrMissingLink):
		return http.StatusUnprocessableEntity
	case errors.Is(err, permission.ErrDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
