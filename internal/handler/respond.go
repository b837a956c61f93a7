package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/middleware"
	"github.com/okr-tracker-api/internal/policy"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError переводит доменные ошибки в HTTP статусы.
// Детали внутренних сбоев наружу не выдаются.
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, logger, http.StatusForbidden, "access denied", "")
	case errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOKRNotFound),
		errors.Is(err, domain.ErrAssigneeNotFound):
		respondError(w, logger, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrNoKeyResults),
		errors.Is(err, domain.ErrEmptyKeyResult),
		errors.Is(err, domain.ErrInvalidAssignment),
		errors.Is(err, domain.ErrInvalidDueDate),
		errors.Is(err, domain.ErrEmptyCommentText),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidKeyResults):
		respondError(w, logger, http.StatusBadRequest, "validation error", err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		respondError(w, logger, http.StatusConflict, err.Error(), "")
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(w, logger, http.StatusInternalServerError, "internal server error", "")
	}
}

func extractID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// requireActor достаёт актора из контекста; без него запрос не
// должен был пройти middleware
func requireActor(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (policy.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "authentication required", "")
	}
	return actor, ok
}
