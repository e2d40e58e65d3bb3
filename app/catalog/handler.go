package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/app/api"
	"github.com/mytheresa/go-catalog-service/models"
	"github.com/mytheresa/go-catalog-service/service"
)

type Response struct {
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
	Products []Product `json:"products"`
}

type Product struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Price       json.Number `json:"price"`
	Stock       int         `json:"stock"`
	CategoryID  uint        `json:"category_id"`
}

type ProductProvider interface {
	Create(ctx context.Context, in service.CreateProductInput) (*models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, filters models.ProductFilters) (*service.ListResult[models.Product], error)
	ListByCategory(ctx context.Context, categoryID uint, filters models.ProductFilters) (*service.ListResult[models.Product], error)
	ListByDepartment(ctx context.Context, departmentID uint, filters models.ProductFilters) (*service.ListResult[models.Product], error)
	Update(ctx context.Context, id uint, in service.UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

type CatalogHandler struct {
	svc ProductProvider
	log *zap.Logger
}

func NewCatalogHandler(svc ProductProvider, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

func toProduct(p *models.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       api.Money(p.Price),
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
	}
}

func writeList(w http.ResponseWriter, result *service.ListResult[models.Product]) {
	response := Response{
		Total:    result.Total,
		Limit:    result.Page.Limit,
		Offset:   result.Page.Offset,
		Products: make([]Product, len(result.Items)),
	}
	for i := range result.Items {
		response.Products[i] = toProduct(&result.Items[i])
	}
	api.WriteJSON(w, http.StatusOK, response)
}

// HandleGet lists products. Accepted query parameters are name, min_price,
// max_price, category_id, department_id, sort_by, sort_order and either
// offset/limit or page/size.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	filters, err := api.ParseProductFilters(r.URL.Query())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.svc.List(r.Context(), filters)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	writeList(w, result)
}

func (h *CatalogHandler) HandleGetByCategory(w http.ResponseWriter, r *http.Request) {
	h.listScoped(w, r, "categoryID", h.svc.ListByCategory)
}

func (h *CatalogHandler) HandleGetByDepartment(w http.ResponseWriter, r *http.Request) {
	h.listScoped(w, r, "departmentID", h.svc.ListByDepartment)
}

type scopedList func(ctx context.Context, id uint, filters models.ProductFilters) (*service.ListResult[models.Product], error)

func (h *CatalogHandler) listScoped(w http.ResponseWriter, r *http.Request, param string, list scopedList) {
	id, err := api.ParseID(r, param)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	filters, err := api.ParseProductFilters(r.URL.Query())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := list(r.Context(), id, filters)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	writeList(w, result)
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	product, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toProduct(product))
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProductInput
	if err := api.DecodeJSON(w, r, "product", &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	product, err := h.svc.Create(r.Context(), input)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, toProduct(product))
}

func (h *CatalogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	var input service.UpdateProductInput
	if err := api.DecodeJSON(w, r, "product", &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	product, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toProduct(product))
}

func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
