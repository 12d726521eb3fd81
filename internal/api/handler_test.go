package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"breadthpulse/internal/domain/dto"
	"breadthpulse/internal/domain/models"
	"breadthpulse/internal/service"
)

type mockBreadthService struct {
	breadth    *models.Breadth
	breadthErr error
	quotes     []models.UniverseQuote
	quotesErr  error
}

func (m *mockBreadthService) GetBreadth(_ context.Context) (*models.Breadth, error) {
	return m.breadth, m.breadthErr
}

func (m *mockBreadthService) GetUniverse(_ context.Context) ([]models.UniverseQuote, error) {
	return m.quotes, m.quotesErr
}

func (m *mockBreadthService) GetOverview(_ context.Context) (*models.Breadth, []models.UniverseQuote, error) {
	if m.breadthErr != nil {
		return nil, nil, m.breadthErr
	}
	if m.quotesErr != nil {
		return nil, nil, m.quotesErr
	}
	return m.breadth, m.quotes, nil
}

var _ service.BreadthService = (*mockBreadthService)(nil)

func setupRouterWithMock(s service.BreadthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/breadth", h.GetBreadth)
	v1.GET("/universe", h.GetUniverse)
	v1.GET("/overview", h.GetOverview)
	return r
}

func sampleBreadth() *models.Breadth {
	return &models.Breadth{
		Current: models.CurrentSummary{Advances: 2, Declines: 1, Total: 3},
		ChartData: []models.BreadthPoint{
			{Time: "10:00", Advances: 1, Declines: 1},
			{Time: "10:01", Advances: 2, Declines: 1},
		},
	}
}

func TestGetBreadth_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockBreadthService
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "no data in window",
			svc:    &mockBreadthService{},
			status: http.StatusNotFound,
			assert: func(t *testing.T, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Message != "no data found" {
					t.Fatalf("unexpected message %q", out.Message)
				}
			},
		},
		{
			name:   "source failure",
			svc:    &mockBreadthService{breadthErr: errors.New("db down")},
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockBreadthService{breadth: sampleBreadth()},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BreadthResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Current.Total != 3 || len(out.ChartData) != 2 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.ChartData[0].Time != "10:00" {
					t.Fatalf("series order lost: %+v", out.ChartData)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/breadth", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetUniverse_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockBreadthService
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "empty store yields empty array",
			svc:    &mockBreadthService{quotes: []models.UniverseQuote{}},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out []models.UniverseQuote
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out) != 0 {
					t.Fatalf("expected empty array, got %+v", out)
				}
			},
		},
		{
			name:   "source failure",
			svc:    &mockBreadthService{quotesErr: errors.New("db down")},
			status: http.StatusInternalServerError,
		},
		{
			name: "success",
			svc: &mockBreadthService{quotes: []models.UniverseQuote{
				{SecurityID: 2885, LastTradedPrice: "2954.10", Volume: 1250000, ClosePrice: "2940.00"},
			}},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out []models.UniverseQuote
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out) != 1 || out[0].SecurityID != 2885 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/universe", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetOverview(t *testing.T) {
	svc := &mockBreadthService{
		breadth: sampleBreadth(),
		quotes:  []models.UniverseQuote{{SecurityID: 2885}},
	}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var out dto.OverviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Breadth == nil || out.Breadth.Current.Total != 3 {
		t.Fatalf("unexpected breadth: %+v", out.Breadth)
	}
	if len(out.Universe) != 1 {
		t.Fatalf("unexpected universe: %+v", out.Universe)
	}
}

func TestGetOverview_EmptyWindowIsNullBreadth(t *testing.T) {
	svc := &mockBreadthService{quotes: []models.UniverseQuote{}}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200 even with empty window", w.Code)
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(out["breadth"]) != "null" {
		t.Fatalf("breadth=%s, want null", out["breadth"])
	}
}

func TestGetOverview_Error(t *testing.T) {
	svc := &mockBreadthService{breadthErr: errors.New("down")}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}
