package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/merchware/shipcast/internal/domain/dto"
	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/service"
	"github.com/merchware/shipcast/internal/storage"
)

type mockEstimateService struct {
	estimate *dto.EstimateResponse
	preview  *dto.PreviewResponse
	err      error
}

func (m *mockEstimateService) Estimate(context.Context, dto.EstimateRequest) (*dto.EstimateResponse, error) {
	return m.estimate, m.err
}
func (m *mockEstimateService) Preview(context.Context, dto.PreviewRequest) (*dto.PreviewResponse, error) {
	return m.preview, m.err
}
func (m *mockEstimateService) Countries(context.Context) []dto.CountryOption {
	return []dto.CountryOption{{Code: "GB", Name: "United Kingdom"}, {Code: "US", Name: "United States"}}
}

var _ service.EstimateService = (*mockEstimateService)(nil)

type mockConfigService struct {
	settings *models.Settings
	rules    []models.Rule
	rule     *models.Rule
	err      error

	saved   *models.Settings
	created *models.Rule
	updated *models.Rule
	deleted string
}

func (m *mockConfigService) GetSettings(_ context.Context, shop string) (*models.Settings, error) {
	return m.settings, m.err
}
func (m *mockConfigService) SaveSettings(_ context.Context, s *models.Settings) error {
	m.saved = s
	return m.err
}
func (m *mockConfigService) ListRules(context.Context, string) ([]models.Rule, error) {
	return m.rules, m.err
}
func (m *mockConfigService) GetRule(context.Context, string, string) (*models.Rule, error) {
	if m.rule == nil && m.err == nil {
		return nil, storage.ErrRuleNotFound
	}
	return m.rule, m.err
}
func (m *mockConfigService) CreateRule(_ context.Context, r *models.Rule) error {
	m.created = r
	return m.err
}
func (m *mockConfigService) UpdateRule(_ context.Context, r *models.Rule) error {
	m.updated = r
	return m.err
}
func (m *mockConfigService) DeleteRule(_ context.Context, _ string, id string) error {
	m.deleted = id
	return m.err
}

var _ service.ConfigService = (*mockConfigService)(nil)

func setupRouterWithMocks(est service.EstimateService, cfg service.ConfigService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(est, cfg)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/estimate", h.Estimate)
	v1.POST("/preview", h.Preview)
	v1.GET("/countries", h.Countries)
	v1.GET("/settings", h.GetSettings)
	v1.PUT("/settings", h.PutSettings)
	v1.GET("/rules", h.ListRules)
	v1.POST("/rules", h.CreateRule)
	v1.GET("/rules/:id", h.GetRule)
	v1.PUT("/rules/:id", h.UpdateRule)
	v1.DELETE("/rules/:id", h.DeleteRule)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimateHandler_TableDriven(t *testing.T) {
	okResp := &dto.EstimateResponse{
		Message:  "Arrives <strong>Mar 5–9</strong>",
		RuleID:   "rule-1",
		Schedule: dto.ScheduleDTO{ShippingDate: "2026-03-02"},
	}

	cases := []struct {
		name   string
		svc    *mockEstimateService
		body   any
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing shop",
			svc:    &mockEstimateService{},
			body:   map[string]any{"product": map[string]any{"id": "1"}},
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid target",
			svc:    &mockEstimateService{},
			body:   map[string]any{"shop": "demo.myshopify.com", "target": "xml"},
			status: http.StatusBadRequest,
		},
		{
			name:   "internal error",
			svc:    &mockEstimateService{err: errors.New("db down")},
			body:   map[string]any{"shop": "demo.myshopify.com"},
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockEstimateService{estimate: okResp},
			body:   map[string]any{"shop": "demo.myshopify.com", "target": "html"},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.EstimateResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.RuleID != "rule-1" || out.Schedule.ShippingDate != "2026-03-02" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMocks(tc.svc, &mockConfigService{})
			w := doJSON(r, http.MethodPost, "/api/v1/estimate", tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestPreviewHandler(t *testing.T) {
	svc := &mockEstimateService{preview: &dto.PreviewResponse{Results: []dto.RulePreview{
		{RuleID: "rule-1", Matched: true, Message: "Arrives Mar 5–9"},
	}}}
	r := setupRouterWithMocks(svc, &mockConfigService{})

	w := doJSON(r, http.MethodPost, "/api/v1/preview", map[string]any{"shop": "demo.myshopify.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	var out dto.PreviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out.Results) != 1 || !out.Results[0].Matched {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestCountriesHandler(t *testing.T) {
	r := setupRouterWithMocks(&mockEstimateService{}, &mockConfigService{})
	w := doJSON(r, http.MethodGet, "/api/v1/countries", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var out []dto.CountryOption
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 2 || out[0].Code != "GB" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestSettingsHandlers(t *testing.T) {
	t.Run("get requires shop", func(t *testing.T) {
		r := setupRouterWithMocks(&mockEstimateService{}, &mockConfigService{})
		w := doJSON(r, http.MethodGet, "/api/v1/settings", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		cfg := &mockConfigService{settings: models.DefaultSettings("demo.myshopify.com")}
		r := setupRouterWithMocks(&mockEstimateService{}, cfg)
		w := doJSON(r, http.MethodGet, "/api/v1/settings?shop=demo.myshopify.com", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
		}
		var out models.Settings
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.CutoffTime != "14:00" {
			t.Fatalf("unexpected body: %+v", out)
		}
	})

	t.Run("put", func(t *testing.T) {
		cfg := &mockConfigService{}
		r := setupRouterWithMocks(&mockEstimateService{}, cfg)
		w := doJSON(r, http.MethodPut, "/api/v1/settings", models.DefaultSettings("demo.myshopify.com"))
		if w.Code != http.StatusOK {
			t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
		}
		if cfg.saved == nil || cfg.saved.Shop != "demo.myshopify.com" {
			t.Fatalf("saved = %+v", cfg.saved)
		}
	})

	t.Run("put rejected", func(t *testing.T) {
		cfg := &mockConfigService{err: fmt.Errorf("%w: cutoff", service.ErrValidation)}
		r := setupRouterWithMocks(&mockEstimateService{}, cfg)
		w := doJSON(r, http.MethodPut, "/api/v1/settings", models.DefaultSettings("demo.myshopify.com"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("put malformed body", func(t *testing.T) {
		r := setupRouterWithMocks(&mockEstimateService{}, &mockConfigService{})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("code=%d", w.Code)
		}
	})
}

func TestRuleHandlers(t *testing.T) {
	rule := models.Rule{
		ID:       "9f2c7a3e-0000-0000-0000-000000000001",
		Shop:     "demo.myshopify.com",
		Name:     "Standard",
		Settings: models.RuleSettings{EtaMin: 3, EtaMax: 5},
	}

	t.Run("list requires shop", func(t *testing.T) {
		r := setupRouterWithMocks(&mockEstimateService{}, &mockConfigService{})
		w := doJSON(r, http.MethodGet, "/api/v1/rules", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("list empty is an array", func(t *testing.T) {
		r := setupRouterWithMocks(&mockEstimateService{}, &mockConfigService{})
		w := doJSON(r, http.MethodGet, "/api/v1/rules?shop=demo.myshopify.com", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("code=%d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("body = %q, want empty array", body)
		}
	})

	t.Run("create", func(t *testing.T) {
		cfg := &mockConfigService{}
		r := setupRouterWithMocks(&mockEstimateService{}, cfg)
		w := doJSON(r, http.MethodPost, "/api/v1/rules", rule)
		if w.Code != http.StatusCreated {
			t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
		}
		if cfg.created == nil || cfg.created.Name != "Standard" {
			t.Fatalf("created = %+v", cfg.created)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		r := setupRouterWithMocks(&mockEstimateService{}, &mockConfigService{err: storage.ErrRuleNotFound})
		w := doJSON(r, http.MethodGet, "/api/v1/rules/nope?shop=demo.myshopify.com", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("update uses path id", func(t *testing.T) {
		cfg := &mockConfigService{}
		r := setupRouterWithMocks(&mockEstimateService{}, cfg)
		w := doJSON(r, http.MethodPut, "/api/v1/rules/"+rule.ID, models.Rule{Shop: rule.Shop, Name: "Renamed", Settings: rule.Settings})
		if w.Code != http.StatusOK {
			t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
		}
		if cfg.updated == nil || cfg.updated.ID != rule.ID || cfg.updated.Name != "Renamed" {
			t.Fatalf("updated = %+v", cfg.updated)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		cfg := &mockConfigService{err: storage.ErrRuleNotFound}
		r := setupRouterWithMocks(&mockEstimateService{}, cfg)
		w := doJSON(r, http.MethodPut, "/api/v1/rules/"+rule.ID, rule)
		if w.Code != http.StatusNotFound {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		cfg := &mockConfigService{}
		r := setupRouterWithMocks(&mockEstimateService{}, cfg)
		w := doJSON(r, http.MethodDelete, "/api/v1/rules/"+rule.ID+"?shop=demo.myshopify.com", nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("code=%d", w.Code)
		}
		if cfg.deleted != rule.ID {
			t.Fatalf("deleted = %q", cfg.deleted)
		}
	})
}
