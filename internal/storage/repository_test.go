package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*snapshotsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &snapshotsRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestSnapshotsSince_SQLMock(t *testing.T) {
	since := time.Date(2025, 1, 15, 9, 45, 0, 0, time.UTC)
	selectRegex := `SELECT last_traded_price::text, close_price::text, observed_at\s+FROM snapshots\s+WHERE observed_at >= \$1\s+ORDER BY observed_at ASC`

	cases := []struct {
		name    string
		rows    *sqlmock.Rows
		wantLen int
	}{
		{
			name: "rows in window",
			rows: sqlmock.NewRows([]string{"last_traded_price", "close_price", "observed_at"}).
				AddRow("11.50", "10.00", since.Add(5*time.Second)).
				AddRow("9.75", "10.00", since.Add(40*time.Second)),
			wantLen: 2,
		},
		{
			name: "NULL prices scan to empty strings",
			rows: sqlmock.NewRows([]string{"last_traded_price", "close_price", "observed_at"}).
				AddRow(nil, "10.00", since.Add(time.Second)),
			wantLen: 1,
		},
		{
			name:    "empty window",
			rows:    sqlmock.NewRows([]string{"last_traded_price", "close_price", "observed_at"}),
			wantLen: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()

			mock.ExpectQuery(selectRegex).WithArgs(since).WillReturnRows(tc.rows)

			out, err := repo.SnapshotsSince(context.Background(), since)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(out) != tc.wantLen {
				t.Fatalf("got %d rows, want %d", len(out), tc.wantLen)
			}
			if tc.name == "NULL prices scan to empty strings" && out[0].LastTradedPrice != "" {
				t.Fatalf("expected empty price, got %q", out[0].LastTradedPrice)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestSnapshotsSince_QueryError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT last_traded_price`).WillReturnError(errStub{})

	if _, err := repo.SnapshotsSince(context.Background(), time.Now()); err == nil {
		t.Fatalf("expected error from failing query")
	}
}

func TestLatestQuotes_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	rows := sqlmock.NewRows([]string{"security_id", "last_traded_price", "volume", "close_price"}).
		AddRow(int64(2885), "2954.10", int64(1250000), "2940.00").
		AddRow(int64(11536), "3410.00", int64(640000), "3425.50")

	mock.ExpectQuery(`SELECT DISTINCT ON \(security_id\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	out, err := repo.LatestQuotes(context.Background(), []int64{2885, 11536})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d quotes, want 2", len(out))
	}
	if out[0].SecurityID != 2885 || out[0].LastTradedPrice != "2954.10" || out[0].Volume != 1250000 {
		t.Fatalf("unexpected first quote: %+v", out[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLatestQuotes_EmptyAllowList(t *testing.T) {
	repo, _, done := newMockRepo(t)
	defer done()

	out, err := repo.LatestQuotes(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice without touching the DB, got %+v", out)
	}
}

func TestLatestQuotes_QueryError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT DISTINCT ON`).WillReturnError(errStub{})

	if _, err := repo.LatestQuotes(context.Background(), []int64{1}); err == nil {
		t.Fatalf("expected error from failing query")
	}
}

type errStub struct{}

func (errStub) Error() string { return "stub failure" }
