package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func record(date string, views, clicks int64) Record {
	return Record{Date: day(date), Views: views, Clicks: clicks}
}

func TestClickRate(t *testing.T) {
	assert.Equal(t, 16.67, ClickRate(150, 25))
	assert.Equal(t, 50.0, ClickRate(2, 1))
	assert.Equal(t, 0.0, ClickRate(100, 0))
}

func TestClickRateZeroViews(t *testing.T) {
	assert.Equal(t, 0.0, ClickRate(0, 0))
	assert.Equal(t, 0.0, ClickRate(0, 10))
}

func TestClickRateNotClamped(t *testing.T) {
	// Upstream ingestion may report more clicks than views; the rate is
	// surfaced as-is.
	assert.Equal(t, 200.0, ClickRate(5, 10))
}

func TestDerive(t *testing.T) {
	records := []Record{
		record("2026-03-01", 100, 10),
		record("2026-03-02", 0, 0),
	}

	rated := Derive(records)
	require.Len(t, rated, 2)
	assert.Equal(t, 10.0, rated[0].ClickRate)
	assert.Equal(t, 0.0, rated[1].ClickRate)

	// Input untouched
	assert.Equal(t, int64(100), records[0].Views)
}

func TestDeriveEmpty(t *testing.T) {
	assert.Empty(t, Derive(nil))
	assert.Empty(t, Derive([]Record{}))
}

func TestSum(t *testing.T) {
	totals := Sum([]Record{
		record("2026-03-01", 100, 10),
		record("2026-03-02", 50, 15),
	})

	assert.Equal(t, int64(150), totals.TotalViews)
	assert.Equal(t, int64(25), totals.TotalClicks)
	assert.Equal(t, 16.67, totals.AverageClickRate)
}

func TestSumEmpty(t *testing.T) {
	totals := Sum(nil)
	assert.Equal(t, int64(0), totals.TotalViews)
	assert.Equal(t, int64(0), totals.TotalClicks)
	assert.Equal(t, 0.0, totals.AverageClickRate)
}

func TestSumAveragesFromTotalsNotPerDayRates(t *testing.T) {
	// A tiny day at 100% must not drag the average toward it.
	totals := Sum([]Record{
		record("2026-03-01", 1, 1),
		record("2026-03-02", 999, 0),
	})
	assert.Equal(t, 0.1, totals.AverageClickRate)
}

func TestTimeSeriesSortsAscending(t *testing.T) {
	points := TimeSeries([]Record{
		record("2026-03-03", 30, 3),
		record("2026-03-01", 10, 1),
		record("2026-03-02", 20, 2),
	})

	require.Len(t, points, 3)
	assert.Equal(t, "2026-03-01", points[0].Date)
	assert.Equal(t, "2026-03-02", points[1].Date)
	assert.Equal(t, "2026-03-03", points[2].Date)
}

func TestTimeSeriesSumsDuplicateDays(t *testing.T) {
	points := TimeSeries([]Record{
		record("2026-03-01", 10, 2),
		record("2026-03-01", 5, 1),
	})

	require.Len(t, points, 1)
	assert.Equal(t, int64(15), points[0].Views)
	assert.Equal(t, int64(3), points[0].Clicks)
	assert.Equal(t, 20.0, points[0].ClickRate)
}

func TestTimeSeriesKeepsGaps(t *testing.T) {
	points := TimeSeries([]Record{
		record("2026-03-01", 10, 1),
		record("2026-03-05", 20, 2),
	})
	require.Len(t, points, 2)
}

func TestZeroFill(t *testing.T) {
	points := TimeSeries([]Record{
		record("2026-03-01", 10, 1),
		record("2026-03-03", 30, 3),
	})

	filled := ZeroFill(points, day("2026-03-01"), day("2026-03-04"))
	require.Len(t, filled, 4)
	assert.Equal(t, int64(10), filled[0].Views)
	assert.Equal(t, int64(0), filled[1].Views)
	assert.Equal(t, "2026-03-02", filled[1].Date)
	assert.Equal(t, int64(30), filled[2].Views)
	assert.Equal(t, int64(0), filled[3].Views)
}
