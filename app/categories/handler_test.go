package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/models"
	"github.com/mytheresa/go-catalog-service/service"
)

// --- Mock Provider ---

type MockCategoryProvider struct {
	Categories []models.Category
	CreateErr  error
	ListErr    error
	LastSaved  service.CreateCategoryInput
	LastScope  uint
	LastPage   models.PageRequest
}

func (m *MockCategoryProvider) result(req models.PageRequest) (*service.ListResult[models.Category], error) {
	m.LastPage = req
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	page, err := models.ComposePage(req)
	if err != nil {
		return nil, err
	}
	return &service.ListResult[models.Category]{Items: m.Categories, Total: int64(len(m.Categories)), Page: page}, nil
}

func (m *MockCategoryProvider) List(_ context.Context, req models.PageRequest) (*service.ListResult[models.Category], error) {
	return m.result(req)
}

func (m *MockCategoryProvider) ListByDepartment(_ context.Context, departmentID uint, req models.PageRequest) (*service.ListResult[models.Category], error) {
	m.LastScope = departmentID
	return m.result(req)
}

func (m *MockCategoryProvider) Get(_ context.Context, id uint) (*models.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			return &m.Categories[i], nil
		}
	}
	return nil, models.NotFound("category", id)
}

func (m *MockCategoryProvider) Create(_ context.Context, in service.CreateCategoryInput) (*models.Category, error) {
	m.LastSaved = in
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return &models.Category{ID: 10, Name: in.Name, DepartmentID: in.DepartmentID}, nil
}

func (m *MockCategoryProvider) Update(ctx context.Context, id uint, in service.UpdateCategoryInput) (*models.Category, error) {
	c, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.DepartmentID != nil {
		c.DepartmentID = *in.DepartmentID
	}
	return c, nil
}

func (m *MockCategoryProvider) Delete(ctx context.Context, id uint) error {
	_, err := m.Get(ctx, id)
	return err
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// --- Tests: GET /categories ---

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		mockSetup          func() *MockCategoryProvider
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			url:  "/categories",
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{
					Categories: []models.Category{
						{ID: 1, Name: "Shirts", DepartmentID: 1},
						{ID: 2, Name: "Shoes", DepartmentID: 1},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ListResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.EqualValues(t, 2, resp.Total)
				assert.Len(t, resp.Categories, 2)
				assert.Equal(t, "Shirts", resp.Categories[0].Name)
				assert.Equal(t, uint(1), resp.Categories[1].DepartmentID)
			},
		},
		{
			name: "Success with empty list",
			url:  "/categories",
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{Categories: []models.Category{}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"total":0,"limit":20,"offset":0,"categories":[]}`, rec.Body.String())
			},
		},
		{
			name: "Limit above the cap",
			url:  "/categories?limit=500",
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ListResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, models.MaxLimit, resp.Limit)
			},
		},
		{
			name: "Repository error",
			url:  "/categories",
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{ListErr: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "internal_error", errResp["code"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mock := tc.mockSetup()
			handler := NewCategoryHandler(mock, zap.NewNop())
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestHandleGetByDepartment(t *testing.T) {
	mock := &MockCategoryProvider{Categories: []models.Category{{ID: 1, Name: "Shirts", DepartmentID: 4}}}
	handler := NewCategoryHandler(mock, zap.NewNop())
	req := withURLParam(httptest.NewRequest("GET", "/categories/by-department/4?page=1&size=5", nil), "departmentID", "4")
	rec := httptest.NewRecorder()

	handler.HandleGetByDepartment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(4), mock.LastScope)
	assert.Equal(t, 1, *mock.LastPage.Page)
	assert.Equal(t, 5, *mock.LastPage.Size)
}

// --- Tests: POST /categories ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		mockSetup          func() *MockCategoryProvider
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCalls     func(t *testing.T, m *MockCategoryProvider)
	}{
		{
			name: "Success",
			body: `{"name":"Shirts","department_id":1}`,
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{}
			},
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"id":10,"name":"Shirts","department_id":1}`, rec.Body.String())
			},
			checkRepoCalls: func(t *testing.T, m *MockCategoryProvider) {
				assert.Equal(t, "Shirts", m.LastSaved.Name)
				assert.Equal(t, uint(1), m.LastSaved.DepartmentID)
			},
		},
		{
			name: "Invalid JSON",
			body: `{"name":`,
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{}
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Duplicate name",
			body: `{"name":"Shirts","department_id":1}`,
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{CreateErr: models.DuplicateName("category", "Shirts")}
			},
			expectedStatusCode: http.StatusConflict,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "duplicate_name", errResp["code"])
				assert.Equal(t, "name", errResp["field"])
			},
		},
		{
			name: "Unknown department",
			body: `{"name":"Shirts","department_id":8}`,
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{CreateErr: models.MissingParent("category", "department_id", 8)}
			},
			expectedStatusCode: http.StatusConflict,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "foreign_key_violation", errResp["code"])
				assert.Equal(t, "department_id", errResp["field"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := tc.mockSetup()
			handler := NewCategoryHandler(mock, zap.NewNop())
			req := httptest.NewRequest("POST", "/categories", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCalls != nil {
				tc.checkRepoCalls(t, mock)
			}
		})
	}
}

func TestHandleUpdateAndDelete(t *testing.T) {
	mock := &MockCategoryProvider{Categories: []models.Category{{ID: 1, Name: "Shirts", DepartmentID: 1}}}
	handler := NewCategoryHandler(mock, zap.NewNop())

	req := withURLParam(httptest.NewRequest("PATCH", "/categories/1", strings.NewReader(`{"name":"Polos"}`)), "id", "1")
	rec := httptest.NewRecorder()
	handler.HandleUpdate(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Polos","department_id":1}`, rec.Body.String())

	req = withURLParam(httptest.NewRequest("DELETE", "/categories/1", nil), "id", "1")
	rec = httptest.NewRecorder()
	handler.HandleDelete(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = withURLParam(httptest.NewRequest("GET", "/categories/2", nil), "id", "2")
	rec = httptest.NewRecorder()
	handler.HandleGet(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
