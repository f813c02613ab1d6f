package normalizer

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/init-pkg/rework-tracker/domain/app"
	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
)

func TestAttribute(t *testing.T) {
	cases := []struct {
		disposition string
		rework      float64
		scrap       float64
	}{
		{"Rework", 100, 0},
		{" REWORK ", 100, 0},
		{"Rework - line 3", 100, 0},
		{"Scrapped", 0, 400},
		{"Scrap", 0, 400},
		{"scrap per QA", 0, 400},
		{"Released", 0, 0},
		{"Reworked", 0, 0},
		{"", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.disposition, func(t *testing.T) {
			rework, scrap := Attribute(100, 20, 500, tc.disposition)
			assert.InDelta(t, tc.rework, rework, 1e-9)
			assert.InDelta(t, tc.scrap, scrap, 1e-9)
		})
	}
}

func TestAttributeEdgeCases(t *testing.T) {
	rework, scrap := Attribute(0, 5, 500, "Rework")
	assert.Zero(t, rework, "no produced cases means no unit cost")
	assert.Zero(t, scrap)

	_, scrap = Attribute(10, 15, 100, "Scrap")
	assert.Zero(t, scrap, "reworked above produced never goes negative")
}

func TestNormalizeRow(t *testing.T) {
	header := []string{"Hold Date", "Cases Produced", "Cases Reworked", "Cost", "Disposition", "Root Cause"}
	cols := header_mapping_service.ResolveColumns(header)

	rec, ok := NormalizeRow([]string{"2024-01-05", "100", "20", "500", "Rework", "Mislabel"}, cols)
	require.True(t, ok)

	assert.Equal(t, "2024-01-05", rec.HoldDate)
	assert.Equal(t, "", rec.ProductionDate)
	assert.Equal(t, 100, rec.CasesProduced)
	assert.Equal(t, 20, rec.CasesReworked)
	assert.Equal(t, 500.0, rec.Cost)
	assert.Equal(t, 500.0, rec.CostImpact)
	assert.InDelta(t, 100, rec.CostRework, 1e-9)
	assert.Zero(t, rec.CostScrap)
	assert.Equal(t, "Mislabel", rec.RootCause)
	assert.Equal(t, "Unknown", rec.Description)
	assert.Equal(t, "Unknown", rec.ItemType)
	assert.Equal(t, "Unknown", rec.Location)
	assert.Equal(t, "100", rec.WorkOrderID, "second cell is the last-resort work order")
	assert.Nil(t, rec.GoalReworkCost)
}

func TestNormalizeRowSkips(t *testing.T) {
	cols := header_mapping_service.ResolveColumns([]string{"Date", "Cases Produced"})

	_, ok := NormalizeRow([]string{"", "  "}, cols)
	assert.False(t, ok, "blank row")

	_, ok = NormalizeRow([]string{" ", "10"}, cols)
	assert.False(t, ok, "blank date")

	_, ok = NormalizeRow([]string{"2024-01-05"}, cols)
	assert.True(t, ok, "short rows are fine")
}

func TestNormalizeRowNoisyValues(t *testing.T) {
	header := []string{
		"MfgOrd", "Work Order", "Production Date", "Date Held", "Cases Produced", "Cases Reworked",
		"$ Scrap", "Cost Impact", "Disposition", "Plant Name", "Work Center", "Site",
		"Rework Cost Goal", "Release Rate Goal",
	}
	cols := header_mapping_service.ResolveColumns(header)

	rec, ok := NormalizeRow([]string{
		"", "WO-7", "01/03/24", "1/5/2024", " 1,000 ", "abc", `"$2,000.00"`, "n/a", "Scrap",
		"", "WC-12", "North", "$6,000,000", "x",
	}, cols)
	require.True(t, ok)

	assert.Equal(t, "WO-7", rec.WorkOrderID)
	assert.Equal(t, "01/03/24", rec.ProductionDate)
	assert.Equal(t, "1/5/2024", rec.HoldDate)
	assert.Equal(t, 1000, rec.CasesProduced)
	assert.Equal(t, 0, rec.CasesReworked)
	assert.Equal(t, 2000.0, rec.Cost)
	assert.Equal(t, 2000.0, rec.CostImpact, "unparseable impact falls back to cost")
	assert.InDelta(t, 2000, rec.CostScrap, 1e-9)
	assert.Equal(t, "WC-12", rec.Location, "empty plant falls through to work center")
	require.NotNil(t, rec.GoalReworkCost)
	assert.Equal(t, 6_000_000.0, *rec.GoalReworkCost)
	assert.Nil(t, rec.GoalReleaseRate)
}

func TestNormalizeRowHoldDateFallsBackToDateColumn(t *testing.T) {
	cols := header_mapping_service.ResolveColumns([]string{"Production Date", "Qty"})

	rec, ok := NormalizeRow([]string{"2024-02-01", "4"}, cols)
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", rec.ProductionDate)
	assert.Equal(t, "2024-02-01", rec.HoldDate)
}

func TestServiceNormalize(t *testing.T) {
	table := &app.ParseTableResult{
		Header: []string{"Day", "Cases Produced"},
		Rows:   [][]string{{"2024-01-01", "1"}, {"", "2"}, {"2024-01-02", "3"}},
	}
	s := New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	got := s.Normalize(table, header_mapping_service.ResolveColumns(table.Header))

	require.Len(t, got, 2)
	assert.Equal(t, 3, got[1].CasesProduced)
}

func TestParseFlexibleDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-01-05", day(2024, 1, 5), true},
		{"2024-01-05 13:45:00", day(2024, 1, 5), true},
		{"1/5/2024", day(2024, 1, 5), true},
		{"01/05/24", day(2024, 1, 5), true},
		{"01-05-24", day(2024, 1, 5), true},
		{"2024/01/05", day(2024, 1, 5), true},
		{"2024-1-5", day(2024, 1, 5), true},
		{"2024/1/5", day(2024, 1, 5), true},
		{"2024.01.05", day(2024, 1, 5), true},
		{"Jan 5 2024", day(2024, 1, 5), true},
		{"January 5, 2024", day(2024, 1, 5), true},
		{"5 Jan 2024", day(2024, 1, 5), true},
		{"05-Jan-2024", day(2024, 1, 5), true},
		{"45296", day(2024, 1, 5), true},
		{"2024-02-30", day(2024, 3, 1), true},
		{"", time.Time{}, false},
		{"soon", time.Time{}, false},
		{"123", time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseFlexibleDate(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}
