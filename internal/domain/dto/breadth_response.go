package dto

import "breadthpulse/internal/domain/models"

// BreadthResponse is the JSON body of GET /api/v1/breadth.
//
// The shape mirrors models.Breadth; a dedicated DTO keeps the API surface
// decoupled from internal models.
type BreadthResponse struct {
	Current   models.CurrentSummary `json:"current"`
	ChartData []models.BreadthPoint `json:"chartData"`
}

// OverviewResponse is the JSON body of GET /api/v1/overview, a dashboard
// convenience combining both queries. Breadth is null when the trailing
// window holds no snapshots.
type OverviewResponse struct {
	Breadth  *BreadthResponse       `json:"breadth"`
	Universe []models.UniverseQuote `json:"universe"`
}

// NewBreadthResponse maps the internal aggregation result to the API DTO.
func NewBreadthResponse(b *models.Breadth) *BreadthResponse {
	if b == nil {
		return nil
	}
	return &BreadthResponse{Current: b.Current, ChartData: b.ChartData}
}
