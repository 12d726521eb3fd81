// Package breadth implements the market-breadth aggregation pipeline:
// minute bucketing of price snapshots, advance/decline tallying, and
// series assembly. It is pure computation with no storage or transport
// dependencies; callers feed it snapshots already sorted by ascending
// observation time.
package breadth

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"breadthpulse/internal/domain/models"
)

// timeLabelLayout renders bucket labels as "HH:MM" in UTC.
const timeLabelLayout = "15:04"

// Bucket holds the snapshots whose observation time truncates to the same
// interval, identified by its label.
type Bucket struct {
	Label     string
	Snapshots []models.Snapshot
}

// Aggregator runs the bucket/tally/assemble pipeline for a fixed bucket
// width. The zero value is not usable; construct with NewAggregator.
type Aggregator struct {
	width time.Duration
}

// NewAggregator returns an Aggregator with the given bucket width.
// Non-positive widths fall back to one minute.
func NewAggregator(width time.Duration) Aggregator {
	if width <= 0 {
		width = time.Minute
	}
	return Aggregator{width: width}
}

// Bucketize groups snapshots by truncated observation time.
//
// Bucket order is first-occurrence order of each label in the input, which
// equals ascending time order when the input is time-sorted (the store
// guarantees that). The ordered slice plus label index makes the ordering
// explicit instead of leaning on map iteration order.
func (a Aggregator) Bucketize(snaps []models.Snapshot) []Bucket {
	var buckets []Bucket
	index := make(map[string]int, len(snaps))

	for _, s := range snaps {
		label := s.ObservedAt.UTC().Truncate(a.width).Format(timeLabelLayout)
		i, seen := index[label]
		if !seen {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, Bucket{Label: label})
		}
		buckets[i].Snapshots = append(buckets[i].Snapshots, s)
	}
	return buckets
}

// Tally reduces one bucket to a BreadthPoint.
//
// Each snapshot's prices are parsed as decimals: last above close counts
// as an advance, last below close as a decline, equal counts as neither.
// A snapshot whose prices fail to parse contributes to neither side; the
// second return value reports how many were skipped that way so callers
// can surface the drop (the skip itself is deliberate, not an error).
//
// The reduction is commutative over the bucket: member order never
// affects the result.
func Tally(b Bucket) (models.BreadthPoint, int) {
	point := models.BreadthPoint{Time: b.Label}
	skipped := 0

	for _, s := range b.Snapshots {
		last, err := decimal.NewFromString(strings.TrimSpace(s.LastTradedPrice))
		if err != nil {
			skipped++
			continue
		}
		ref, err := decimal.NewFromString(strings.TrimSpace(s.ClosePrice))
		if err != nil {
			skipped++
			continue
		}
		switch last.Cmp(ref) {
		case 1:
			point.Advances++
		case -1:
			point.Declines++
		}
	}
	return point, skipped
}

// Assemble turns ordered per-bucket points into the final result. The
// current summary is always derived from the last point of the series.
func Assemble(points []models.BreadthPoint) *models.Breadth {
	if len(points) == 0 {
		return nil
	}
	last := points[len(points)-1]
	return &models.Breadth{
		Current: models.CurrentSummary{
			Advances: last.Advances,
			Declines: last.Declines,
			Total:    last.Advances + last.Declines,
		},
		ChartData: points,
	}
}

// Compute runs the full pipeline over one window of snapshots.
//
// Returns nil when the input is empty; callers must surface that as a
// distinct "no data" outcome rather than a zero-filled series. The second
// return value is the total number of snapshots skipped for unparseable
// prices across all buckets.
func (a Aggregator) Compute(snaps []models.Snapshot) (*models.Breadth, int) {
	if len(snaps) == 0 {
		return nil, 0
	}

	buckets := a.Bucketize(snaps)
	points := make([]models.BreadthPoint, 0, len(buckets))
	skipped := 0
	for _, b := range buckets {
		p, n := Tally(b)
		points = append(points, p)
		skipped += n
	}
	return Assemble(points), skipped
}
