package analytics

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/app/api"
	"github.com/mytheresa/go-catalog-service/models"
)

type AvgPriceResponse struct {
	DepartmentID   uint        `json:"department_id"`
	DepartmentName string      `json:"department_name"`
	AvgPrice       json.Number `json:"avg_price"`
}

type StockResponse struct {
	CategoryID     uint   `json:"category_id"`
	CategoryName   string `json:"category_name"`
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name"`
	TotalStock     int64  `json:"total_stock"`
}

type CountResponse struct {
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name"`
	ProductCount   int64  `json:"product_count"`
}

type ValueResponse struct {
	DepartmentID   uint        `json:"department_id"`
	DepartmentName string      `json:"department_name"`
	TotalValue     json.Number `json:"total_value"`
}

type SummaryProvider interface {
	AvgPriceByDepartment(ctx context.Context) ([]models.DepartmentAvgPrice, error)
	TotalStockByCategory(ctx context.Context) ([]models.CategoryStock, error)
	CountByDepartment(ctx context.Context) ([]models.DepartmentProductCount, error)
	TotalValueByDepartment(ctx context.Context) ([]models.DepartmentInventoryValue, error)
}

// AnalyticsHandler serves the product summaries. Groups without products
// are left out of every summary.
type AnalyticsHandler struct {
	svc SummaryProvider
	log *zap.Logger
}

func NewAnalyticsHandler(svc SummaryProvider, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: log}
}

// serve runs query and writes its rows mapped through convert.
func serve[Row, Out any](h *AnalyticsHandler, w http.ResponseWriter, r *http.Request,
	query func(context.Context) ([]Row, error), convert func(Row) Out,
) {
	rows, err := query(r.Context())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	response := make([]Out, len(rows))
	for i, row := range rows {
		response[i] = convert(row)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *AnalyticsHandler) HandleAvgPriceByDepartment(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.AvgPriceByDepartment, func(row models.DepartmentAvgPrice) AvgPriceResponse {
		return AvgPriceResponse{
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
			AvgPrice:       api.Money(row.AvgPrice),
		}
	})
}

func (h *AnalyticsHandler) HandleTotalStockByCategory(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.TotalStockByCategory, func(row models.CategoryStock) StockResponse {
		return StockResponse(row)
	})
}

func (h *AnalyticsHandler) HandleCountByDepartment(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.CountByDepartment, func(row models.DepartmentProductCount) CountResponse {
		return CountResponse(row)
	})
}

func (h *AnalyticsHandler) HandleTotalValueByDepartment(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, h.svc.TotalValueByDepartment, func(row models.DepartmentInventoryValue) ValueResponse {
		return ValueResponse{
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
			TotalValue:     api.Money(row.TotalValue),
		}
	})
}
