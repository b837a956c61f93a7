package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewOrganizationHandler(orgService service.OrganizationService, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	var req dto.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	org, err := h.orgService.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, org)
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	orgs, err := h.orgService.List(r.Context(), actor)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, orgs)
}

func (h *OrganizationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	id, err := extractID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid organization id", err.Error())
		return
	}

	org, err := h.orgService.GetByID(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.logger)
	if !ok {
		return
	}

	id, err := extractID(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid organization id", err.Error())
		return
	}

	if err := h.orgService.SoftDelete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
