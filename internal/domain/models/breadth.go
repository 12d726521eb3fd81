package models

// BreadthPoint is the advance/decline tally for one minute bucket.
//
// Fields:
//   - Time: the bucket label, "HH:MM" in UTC.
//   - Advances: snapshots whose last traded price is above the reference close.
//   - Declines: snapshots whose last traded price is below the reference close.
//
// Snapshots that compare equal, or whose prices do not parse as numbers,
// count toward neither field, so Advances+Declines can be less than the
// bucket's snapshot count.
//
// swagger:model BreadthPoint
type BreadthPoint struct {
	Time     string `json:"time" example:"10:45"`
	Advances int    `json:"advances" example:"28"`
	Declines int    `json:"declines" example:"19"`
}

// CurrentSummary is the tally of the chronologically last bucket, with the
// derived total. It is always taken from the last BreadthPoint of a series,
// never computed independently.
//
// swagger:model CurrentSummary
type CurrentSummary struct {
	Advances int `json:"advances" example:"28"`
	Declines int `json:"declines" example:"19"`
	Total    int `json:"total" example:"47"`
}

// Breadth is the full result of one aggregation run: the ordered per-minute
// series plus the current summary derived from its last element.
//
// swagger:model Breadth
type Breadth struct {
	Current   CurrentSummary `json:"current"`
	ChartData []BreadthPoint `json:"chartData"`
}
