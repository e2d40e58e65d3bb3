package models

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// sortColumns is the allow-list of product sort keys.
var sortColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"price": "price",
	"stock": "stock",
}

// PageRequest holds raw pagination parameters. Nil fields were not supplied.
// Either Offset or Page may be used; Size is an alias of Limit for page based requests.
type PageRequest struct {
	Offset *int
	Limit  *int
	Page   *int
	Size   *int
}

// Page is a resolved window over an ordered result set.
type Page struct {
	Offset int
	Limit  int
}

// ComposePage resolves defaults and bounds for a page request.
func ComposePage(req PageRequest) (Page, error) {
	page := Page{Offset: 0, Limit: DefaultLimit}

	if req.Limit != nil && req.Size != nil && *req.Limit != *req.Size {
		return Page{}, Invalid(ErrInvalidPagination, "limit", "limit and size disagree (%d != %d)", *req.Limit, *req.Size)
	}

	limit := req.Limit
	if limit == nil {
		limit = req.Size
	}
	if limit != nil {
		if *limit < 1 {
			return Page{}, Invalid(ErrInvalidPagination, "limit", "limit must be at least 1, got %d", *limit)
		}
		page.Limit = min(*limit, MaxLimit)
	}

	if req.Offset != nil && req.Page != nil {
		return Page{}, Invalid(ErrInvalidPagination, "page", "offset and page cannot be combined")
	}

	if req.Offset != nil {
		if *req.Offset < 0 {
			return Page{}, Invalid(ErrInvalidPagination, "offset", "offset must not be negative, got %d", *req.Offset)
		}
		page.Offset = *req.Offset
	}

	if req.Page != nil {
		if *req.Page < 1 {
			return Page{}, Invalid(ErrInvalidPagination, "page", "page must be at least 1, got %d", *req.Page)
		}
		if *req.Page-1 > math.MaxInt/page.Limit {
			return Page{}, Invalid(ErrInvalidPagination, "page", "page %d is out of range", *req.Page)
		}
		page.Offset = (*req.Page - 1) * page.Limit
	}

	return page, nil
}

// Paginate applies the window to a gorm chain.
func (p Page) Paginate(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset).Limit(p.Limit)
}

// ProductFilters is the declarative product listing request.
// Zero values impose no constraint.
type ProductFilters struct {
	Name         string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	CategoryID   *uint
	DepartmentID *uint
	SortBy       string
	SortOrder    string
	PageRequest
}

// ProductQuery is the fully resolved descriptor handed to ProductsRepository.List.
type ProductQuery struct {
	Name         string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	CategoryID   *uint
	DepartmentID *uint
	SortColumn   string
	Descending   bool
	Page
}

// ComposeProductQuery validates the filters and resolves defaults.
// It performs no I/O.
func ComposeProductQuery(f ProductFilters) (ProductQuery, error) {
	q := ProductQuery{
		Name:         strings.TrimSpace(f.Name),
		MinPrice:     f.MinPrice,
		MaxPrice:     f.MaxPrice,
		CategoryID:   f.CategoryID,
		DepartmentID: f.DepartmentID,
		SortColumn:   "id",
	}

	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return ProductQuery{}, Invalid(ErrInvalidFilterRange, "min_price", "min_price must not be negative")
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return ProductQuery{}, Invalid(ErrInvalidFilterRange, "max_price", "max_price must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return ProductQuery{}, Invalid(ErrInvalidFilterRange, "min_price",
			"min_price %s is greater than max_price %s", f.MinPrice.String(), f.MaxPrice.String())
	}

	if f.SortBy != "" {
		column, ok := sortColumns[strings.ToLower(f.SortBy)]
		if !ok {
			return ProductQuery{}, Invalid(ErrInvalidSortKey, "sort_by", "cannot sort by %q", f.SortBy)
		}
		q.SortColumn = column
	}

	switch strings.ToLower(f.SortOrder) {
	case "", "asc":
	case "desc":
		q.Descending = true
	default:
		return ProductQuery{}, Invalid(ErrInvalidSortKey, "sort_order", "sort_order must be asc or desc, got %q", f.SortOrder)
	}

	page, err := ComposePage(f.PageRequest)
	if err != nil {
		return ProductQuery{}, err
	}
	q.Page = page

	return q, nil
}

// Filter applies the predicates. Department scoping joins products to categories.
func (q ProductQuery) Filter(db *gorm.DB) *gorm.DB {
	if q.DepartmentID != nil {
		db = db.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.department_id = ?", *q.DepartmentID)
	}
	if q.CategoryID != nil {
		db = db.Where("products.category_id = ?", *q.CategoryID)
	}
	if q.Name != "" {
		db = db.Where(`LOWER(products.name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(q.Name))+"%")
	}
	if q.MinPrice != nil {
		db = db.Where("products.price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		db = db.Where("products.price <= ?", *q.MaxPrice)
	}
	return db
}

// Order applies the sort key with id as the ascending tie-break.
func (q ProductQuery) Order(db *gorm.DB) *gorm.DB {
	db = db.Order(clause.OrderByColumn{
		Column: clause.Column{Table: "products", Name: q.SortColumn},
		Desc:   q.Descending,
	})
	if q.SortColumn != "id" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: "products", Name: "id"}})
	}
	return db
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
