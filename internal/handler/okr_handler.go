package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/service"
)

type OKRHandler struct {
	okrService service.OKRService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewOKRHandler(okrService service.OKRService, logger *slog.Logger) *OKRHandler {
	return &OKRHandler{
		okrService: okrService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *OKRHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	var req dto.CreateOKRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	okr, err := h.okrService.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, toOKRResponse(okr))
}

func (h *OKRHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	query := dto.OKRListQuery{
		Status:     r.URL.Query().Get("status"),
		Priority:   r.URL.Query().Get("priority"),
		AssignedTo: r.URL.Query().Get("assigned_to"),
	}

	if err := h.validator.Struct(&query); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	okrs, err := h.okrService.List(r.Context(), actor, &query)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	responses := make([]dto.OKRResponse, len(okrs))
	for i := range okrs {
		responses[i] = toOKRResponse(&okrs[i])
	}

	respondJSON(w, h.logger, http.StatusOK, responses)
}

func (h *OKRHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	id, err := extractID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid okr id", err.Error())
		return
	}

	okr, err := h.okrService.GetByID(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toOKRResponse(okr))
}

func (h *OKRHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	id, err := extractID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid okr id", err.Error())
		return
	}

	var req dto.UpdateOKRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	okr, err := h.okrService.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toOKRResponse(okr))
}

func (h *OKRHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	id, err := extractID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid okr id", err.Error())
		return
	}

	var req dto.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	okr, err := h.okrService.UpdateProgress(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toOKRResponse(okr))
}

func (h *OKRHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	id, err := extractID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid okr id", err.Error())
		return
	}

	var req dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	okr, err := h.okrService.AddComment(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, toOKRResponse(okr))
}

func (h *OKRHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	id, err := extractID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid okr id", err.Error())
		return
	}

	if err := h.okrService.SoftDelete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toOKRResponse(okr *domain.OKR) dto.OKRResponse {
	resp := dto.OKRResponse{
		ID:              okr.ID,
		Title:           okr.Title,
		Objective:       okr.Objective,
		OverallProgress: okr.OverallProgress(),
		AssignedTo: dto.AssignmentResponse{
			Type:   string(okr.AssignedTo.Type),
			UserID: okr.AssignedTo.UserID,
			TeamID: okr.AssignedTo.TeamID,
		},
		AssignedBy:     toUserProjection(okr.AssignedBy),
		AssignedByID:   okr.AssignedByID,
		OrganizationID: okr.OrganizationID,
		DepartmentID:   okr.DepartmentID,
		TeamID:         okr.TeamID,
		Status:         okr.Status,
		Priority:       okr.Priority,
		StartDate:      okr.StartDate,
		DueDate:        okr.DueDate,
		CompletedAt:    okr.CompletedAt,
		IsActive:       okr.IsActive,
		CreatedAt:      okr.CreatedAt,
		UpdatedAt:      okr.UpdatedAt,
	}

	resp.KeyResults = make([]dto.KeyResultResponse, len(okr.KeyResults))
	for i, kr := range okr.KeyResults {
		resp.KeyResults[i] = dto.KeyResultResponse{
			ID:          kr.ID,
			Description: kr.Description,
			Target:      kr.Target,
			Progress:    kr.Progress,
		}
	}

	if len(okr.Comments) > 0 {
		resp.Comments = make([]dto.CommentResponse, len(okr.Comments))
		for i, c := range okr.Comments {
			resp.Comments[i] = dto.CommentResponse{
				ID:        c.ID,
				User:      toUserProjection(c.User),
				UserID:    c.UserID,
				Text:      c.Text,
				CreatedAt: c.CreatedAt,
			}
		}
	}

	return resp
}

func toUserProjection(u *domain.User) *dto.UserProjection {
	if u == nil {
		return nil
	}
	return &dto.UserProjection{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
