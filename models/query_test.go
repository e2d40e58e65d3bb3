package models

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComposePage(t *testing.T) {
	testCases := []struct {
		name     string
		req      PageRequest
		expected Page
		wantErr  error
	}{
		{name: "Defaults", req: PageRequest{}, expected: Page{Offset: 0, Limit: DefaultLimit}},
		{name: "Offset and limit", req: PageRequest{Offset: intPtr(40), Limit: intPtr(10)}, expected: Page{Offset: 40, Limit: 10}},
		{name: "Limit is capped", req: PageRequest{Limit: intPtr(500)}, expected: Page{Offset: 0, Limit: MaxLimit}},
		{name: "Page and size", req: PageRequest{Page: intPtr(3), Size: intPtr(25)}, expected: Page{Offset: 50, Limit: 25}},
		{name: "Page with default size", req: PageRequest{Page: intPtr(2)}, expected: Page{Offset: DefaultLimit, Limit: DefaultLimit}},
		{name: "Matching limit and size", req: PageRequest{Limit: intPtr(5), Size: intPtr(5)}, expected: Page{Offset: 0, Limit: 5}},
		{name: "Zero limit", req: PageRequest{Limit: intPtr(0)}, wantErr: ErrInvalidPagination},
		{name: "Negative offset", req: PageRequest{Offset: intPtr(-1)}, wantErr: ErrInvalidPagination},
		{name: "Page zero", req: PageRequest{Page: intPtr(0)}, wantErr: ErrInvalidPagination},
		{name: "Page offset overflows", req: PageRequest{Page: intPtr(math.MaxInt/DefaultLimit + 2)}, wantErr: ErrInvalidPagination},
		{name: "Last representable page", req: PageRequest{Page: intPtr(math.MaxInt/100 + 1), Limit: intPtr(100)}, expected: Page{Offset: math.MaxInt / 100 * 100, Limit: 100}},
		{name: "Offset with page", req: PageRequest{Offset: intPtr(0), Page: intPtr(1)}, wantErr: ErrInvalidPagination},
		{name: "Conflicting limit and size", req: PageRequest{Limit: intPtr(5), Size: intPtr(6)}, wantErr: ErrInvalidPagination},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := ComposePage(tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, page)
		})
	}
}

func TestComposeProductQuery(t *testing.T) {
	testCases := []struct {
		name    string
		filters ProductFilters
		check   func(t *testing.T, q ProductQuery)
		wantErr error
	}{
		{
			name:    "Defaults sort by id ascending",
			filters: ProductFilters{},
			check: func(t *testing.T, q ProductQuery) {
				assert.Equal(t, "id", q.SortColumn)
				assert.False(t, q.Descending)
				assert.Equal(t, Page{Offset: 0, Limit: DefaultLimit}, q.Page)
			},
		},
		{
			name:    "Sort key and order are case insensitive",
			filters: ProductFilters{SortBy: "Price", SortOrder: "DESC"},
			check: func(t *testing.T, q ProductQuery) {
				assert.Equal(t, "price", q.SortColumn)
				assert.True(t, q.Descending)
			},
		},
		{
			name:    "Name is trimmed",
			filters: ProductFilters{Name: "  shirt "},
			check: func(t *testing.T, q ProductQuery) {
				assert.Equal(t, "shirt", q.Name)
			},
		},
		{
			name:    "Equal bounds are allowed",
			filters: ProductFilters{MinPrice: dec("10"), MaxPrice: dec("10.00")},
			check: func(t *testing.T, q ProductQuery) {
				assert.True(t, q.MinPrice.Equal(*q.MaxPrice))
			},
		},
		{name: "Inverted range", filters: ProductFilters{MinPrice: dec("10.01"), MaxPrice: dec("10")}, wantErr: ErrInvalidFilterRange},
		{name: "Negative min price", filters: ProductFilters{MinPrice: dec("-1")}, wantErr: ErrInvalidFilterRange},
		{name: "Negative max price", filters: ProductFilters{MaxPrice: dec("-0.01")}, wantErr: ErrInvalidFilterRange},
		{name: "Unknown sort key", filters: ProductFilters{SortBy: "category_id"}, wantErr: ErrInvalidSortKey},
		{name: "Unknown sort order", filters: ProductFilters{SortOrder: "up"}, wantErr: ErrInvalidSortKey},
		{name: "Bad pagination", filters: ProductFilters{PageRequest: PageRequest{Limit: intPtr(-3)}}, wantErr: ErrInvalidPagination},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ComposeProductQuery(tc.filters)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				var domainErr *Error
				require.ErrorAs(t, err, &domainErr)
				assert.NotEmpty(t, domainErr.Field)
				return
			}
			require.NoError(t, err)
			tc.check(t, q)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off`, escapeLike("50% off"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
