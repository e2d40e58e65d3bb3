package categories

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/app/api"
	"github.com/mytheresa/go-catalog-service/models"
	"github.com/mytheresa/go-catalog-service/service"
)

type CategoryResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DepartmentID uint   `json:"department_id"`
}

type ListResponse struct {
	Total      int64              `json:"total"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
	Categories []CategoryResponse `json:"categories"`
}

type CategoryProvider interface {
	Create(ctx context.Context, in service.CreateCategoryInput) (*models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	List(ctx context.Context, req models.PageRequest) (*service.ListResult[models.Category], error)
	ListByDepartment(ctx context.Context, departmentID uint, req models.PageRequest) (*service.ListResult[models.Category], error)
	Update(ctx context.Context, id uint, in service.UpdateCategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryHandler struct {
	svc CategoryProvider
	log *zap.Logger
}

func NewCategoryHandler(svc CategoryProvider, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: log}
}

func toResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, DepartmentID: c.DepartmentID}
}

func writeList(w http.ResponseWriter, result *service.ListResult[models.Category]) {
	response := ListResponse{
		Total:      result.Total,
		Limit:      result.Page.Limit,
		Offset:     result.Page.Offset,
		Categories: make([]CategoryResponse, len(result.Items)),
	}
	for i := range result.Items {
		response.Categories[i] = toResponse(&result.Items[i])
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
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

	writeList(w, result)
}

func (h *CategoryHandler) HandleGetByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, err := api.ParseID(r, "departmentID")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	req, err := api.ParsePageRequest(r.URL.Query())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.svc.ListByDepartment(r.Context(), departmentID, req)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	writeList(w, result)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	category, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(category))
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCategoryInput
	if err := api.DecodeJSON(w, r, "category", &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	category, err := h.svc.Create(r.Context(), input)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, toResponse(category))
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	var input service.UpdateCategoryInput
	if err := api.DecodeJSON(w, r, "category", &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	category, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(category))
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
