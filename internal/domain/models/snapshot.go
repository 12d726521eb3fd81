package models

import "time"

// Snapshot is one security's price observation at a point in time, as
// stored in the snapshots table.
//
// Prices are kept as raw strings: the store's numeric columns are scanned
// textually so that the breadth calculator owns numeric interpretation
// (including the decision about unparseable values). A Snapshot is
// immutable once read; the pipeline holds it only for the duration of a
// single request.
type Snapshot struct {
	SecurityID      int64
	LastTradedPrice string
	ClosePrice      string
	ObservedAt      time.Time
}

// UniverseQuote is the latest stored observation for one security in the
// configured universe allow-list. A direct projection of store columns,
// no derived computation.
type UniverseQuote struct {
	SecurityID      int64  `json:"security_id" example:"2885"`
	LastTradedPrice string `json:"last_traded_price" example:"2954.10"`
	Volume          int64  `json:"volume" example:"1250000"`
	ClosePrice      string `json:"close_price" example:"2940.00"`
}
