package services

import (
	"testing"

	"innpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateRow(id uint, from, to string, price float64) models.RoomRate {
	return models.RoomRate{ID: id, RoomTypeID: 1, DateFrom: day(from), DateTo: day(to), Price: price}
}

// applyRewrite replays a rewrite against an in-memory row set so invariants
// can be checked without a database. Inserted rows get synthetic ids past the
// existing ones, the way the database would hand out fresh primary keys; a
// later rewrite must be able to address them without colliding at zero.
func applyRewrite(existing []models.RoomRate, rw rangeRewrite) []models.RoomRate {
	deleted := map[uint]bool{}
	for _, id := range rw.deleteIDs {
		deleted[id] = true
	}
	updated := map[uint]models.RoomRate{}
	for _, row := range rw.updates {
		updated[row.ID] = row
	}

	nextID := uint(1)
	for _, row := range existing {
		if row.ID >= nextID {
			nextID = row.ID + 1
		}
	}

	var result []models.RoomRate
	for _, row := range existing {
		if deleted[row.ID] {
			continue
		}
		if u, ok := updated[row.ID]; ok {
			row = u
		}
		result = append(result, row)
	}
	for _, row := range rw.inserts {
		row.ID = nextID
		nextID++
		result = append(result, row)
	}
	return result
}

func assertNonOverlapping(t *testing.T, rows []models.RoomRate) {
	t.Helper()
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			assert.False(t, RangesOverlap(rows[i].DateFrom, rows[i].DateTo, rows[j].DateFrom, rows[j].DateTo),
				"rows [%s..%s] and [%s..%s] overlap",
				rows[i].DateFrom.Format("2006-01-02"), rows[i].DateTo.Format("2006-01-02"),
				rows[j].DateFrom.Format("2006-01-02"), rows[j].DateTo.Format("2006-01-02"))
		}
	}
}

func TestPlanRangeRewriteIntoEmptySeries(t *testing.T) {
	rw := planRangeRewrite(nil, day("2026-01-01"), day("2026-01-05"), 100, models.BaseRateKey(1))

	assert.Empty(t, rw.deleteIDs)
	assert.Empty(t, rw.updates)
	require.Len(t, rw.inserts, 1)
	assert.Equal(t, day("2026-01-01"), rw.inserts[0].DateFrom)
	assert.Equal(t, day("2026-01-05"), rw.inserts[0].DateTo)
	assert.Equal(t, 100.0, rw.inserts[0].Price)
	assert.Nil(t, rw.inserts[0].RatePlanID)
}

func TestPlanRangeRewriteSplitsEnclosingRange(t *testing.T) {
	existing := []models.RoomRate{rateRow(1, "2026-01-01", "2026-01-10", 100)}

	rw := planRangeRewrite(existing, day("2026-01-04"), day("2026-01-06"), 200, models.BaseRateKey(1))
	rows := applyRewrite(existing, rw)

	require.Len(t, rows, 3)
	assertNonOverlapping(t, rows)

	// head keeps the old price up to the day before the new range
	assert.Equal(t, day("2026-01-03"), rows[0].DateTo)
	assert.Equal(t, 100.0, rows[0].Price)

	prices := expandRanges(rows, day("2026-01-01"), day("2026-01-10"), 0)
	assert.Equal(t, 100.0, prices[day("2026-01-01")])
	assert.Equal(t, 100.0, prices[day("2026-01-03")])
	assert.Equal(t, 200.0, prices[day("2026-01-04")])
	assert.Equal(t, 200.0, prices[day("2026-01-06")])
	assert.Equal(t, 100.0, prices[day("2026-01-07")])
	assert.Equal(t, 100.0, prices[day("2026-01-10")])
}

func TestPlanRangeRewriteNewRangeIsAuthoritative(t *testing.T) {
	existing := []models.RoomRate{
		rateRow(1, "2026-01-01", "2026-01-05", 100),
		rateRow(2, "2026-01-06", "2026-01-12", 150),
	}

	rw := planRangeRewrite(existing, day("2026-01-04"), day("2026-01-08"), 999, models.BaseRateKey(1))
	rows := applyRewrite(existing, rw)
	assertNonOverlapping(t, rows)

	prices := expandRanges(rows, day("2026-01-04"), day("2026-01-08"), 0)
	for d, price := range prices {
		assert.Equal(t, 999.0, price, "day %s", d.Format("2006-01-02"))
	}
}

func TestPlanRangeRewriteDeletesContainedRows(t *testing.T) {
	existing := []models.RoomRate{
		rateRow(1, "2026-01-03", "2026-01-04", 80),
		rateRow(2, "2026-01-05", "2026-01-06", 90),
	}

	rw := planRangeRewrite(existing, day("2026-01-01"), day("2026-01-10"), 120, models.BaseRateKey(1))

	assert.ElementsMatch(t, []uint{1, 2}, rw.deleteIDs)
	assert.Empty(t, rw.updates)
	require.Len(t, rw.inserts, 1)
}

func TestPlanRangeRewriteExactMatchReplaces(t *testing.T) {
	existing := []models.RoomRate{rateRow(1, "2026-01-01", "2026-01-05", 100)}

	rw := planRangeRewrite(existing, day("2026-01-01"), day("2026-01-05"), 200, models.BaseRateKey(1))
	rows := applyRewrite(existing, rw)

	require.Len(t, rows, 1)
	assert.Equal(t, 200.0, rows[0].Price)
}

func TestPlanRangeRewriteIsIdempotent(t *testing.T) {
	existing := []models.RoomRate{rateRow(1, "2026-01-01", "2026-01-10", 100)}

	rw := planRangeRewrite(existing, day("2026-01-04"), day("2026-01-06"), 200, models.BaseRateKey(1))
	once := applyRewrite(existing, rw)

	rw2 := planRangeRewrite(once, day("2026-01-04"), day("2026-01-06"), 200, models.BaseRateKey(1))
	twice := applyRewrite(once, rw2)

	assertNonOverlapping(t, twice)
	assert.Equal(t, expandRanges(once, day("2026-01-01"), day("2026-01-10"), 0),
		expandRanges(twice, day("2026-01-01"), day("2026-01-10"), 0))
}

func TestPlanRangeRewriteTrimsTailOverlap(t *testing.T) {
	existing := []models.RoomRate{rateRow(1, "2026-01-05", "2026-01-15", 100)}

	rw := planRangeRewrite(existing, day("2026-01-01"), day("2026-01-07"), 60, models.BaseRateKey(1))
	rows := applyRewrite(existing, rw)

	assertNonOverlapping(t, rows)
	prices := expandRanges(rows, day("2026-01-01"), day("2026-01-15"), 0)
	assert.Equal(t, 60.0, prices[day("2026-01-07")])
	assert.Equal(t, 100.0, prices[day("2026-01-08")])
}

func TestPlanRangeRewriteCarriesPlanKey(t *testing.T) {
	key := models.PlanRateKey(1, 7)
	rw := planRangeRewrite(nil, day("2026-01-01"), day("2026-01-02"), 50, key)

	require.Len(t, rw.inserts, 1)
	require.NotNil(t, rw.inserts[0].RatePlanID)
	assert.Equal(t, uint(7), *rw.inserts[0].RatePlanID)
}

func TestResolveDayPriceFallsBack(t *testing.T) {
	rows := []models.RoomRate{rateRow(1, "2026-01-05", "2026-01-10", 250)}

	assert.Equal(t, 250.0, resolveDayPrice(rows, day("2026-01-05"), 99))
	assert.Equal(t, 250.0, resolveDayPrice(rows, day("2026-01-10"), 99))
	assert.Equal(t, 99.0, resolveDayPrice(rows, day("2026-01-11"), 99))
	assert.Equal(t, 99.0, resolveDayPrice(nil, day("2026-01-05"), 99))
}

func TestRateKeyMatches(t *testing.T) {
	planID := uint(3)
	baseRow := models.RoomRate{RoomTypeID: 1}
	planRow := models.RoomRate{RoomTypeID: 1, RatePlanID: &planID}

	assert.True(t, models.BaseRateKey(1).Matches(baseRow))
	assert.False(t, models.BaseRateKey(1).Matches(planRow))
	assert.True(t, models.PlanRateKey(1, 3).Matches(planRow))
	assert.False(t, models.PlanRateKey(1, 4).Matches(planRow))
	assert.False(t, models.PlanRateKey(2, 3).Matches(planRow))
}
