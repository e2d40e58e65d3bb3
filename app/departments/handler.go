package departments

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/app/api"
	"github.com/mytheresa/go-catalog-service/models"
	"github.com/mytheresa/go-catalog-service/service"
)

type DepartmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ListResponse struct {
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
	Departments []DepartmentResponse `json:"departments"`
}

type DepartmentProvider interface {
	Create(ctx context.Context, in service.CreateDepartmentInput) (*models.Department, error)
	Get(ctx context.Context, id uint) (*models.Department, error)
	List(ctx context.Context, req models.PageRequest) (*service.ListResult[models.Department], error)
	Update(ctx context.Context, id uint, in service.UpdateDepartmentInput) (*models.Department, error)
	Delete(ctx context.Context, id uint) error
}

type DepartmentHandler struct {
	svc DepartmentProvider
	log *zap.Logger
}

func NewDepartmentHandler(svc DepartmentProvider, log *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{svc: svc, log: log}
}

func toResponse(d *models.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

func (h *DepartmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateDepartmentInput
	if err := api.DecodeJSON(w, r, "department", &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	department, err := h.svc.Create(r.Context(), input)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, toResponse(department))
}

func (h *DepartmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	department, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(department))
}

func (h *DepartmentHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	req, err := api.ParsePageRequest(r.URL.Query())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.svc.List(r.Context(), req)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	response := ListResponse{
		Total:       result.Total,
		Limit:       result.Page.Limit,
		Offset:      result.Page.Offset,
		Departments: make([]DepartmentResponse, len(result.Items)),
	}
	for i := range result.Items {
		response.Departments[i] = toResponse(&result.Items[i])
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *DepartmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	var input service.UpdateDepartmentInput
	if err := api.DecodeJSON(w, r, "department", &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	department, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(department))
}

func (h *DepartmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
