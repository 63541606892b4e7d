package performance

import (
	"math"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// ClickRate computes clicks/views as a percentage rounded to 2 decimals.
// Zero views yields zero. Rates above 100% are possible when upstream data
// reports more clicks than views; they are surfaced as-is, never clamped.
func ClickRate(views, clicks int64) float64 {
	if views == 0 {
		return 0
	}
	return round2(float64(clicks) / float64(views) * 100)
}

// Derive annotates each record with its click-through rate. Pure: the
// input slice is not modified.
func Derive(records []Record) []RatedRecord {
	rated := make([]RatedRecord, len(records))
	for i, r := range records {
		rated[i] = RatedRecord{
			Record:    r,
			ClickRate: ClickRate(r.Views, r.Clicks),
		}
	}
	return rated
}

// Sum aggregates a record set. An empty set yields all zeroes.
func Sum(records []Record) Totals {
	var t Totals
	for _, r := range records {
		t.TotalViews += r.Views
		t.TotalClicks += r.Clicks
	}
	t.AverageClickRate = ClickRate(t.TotalViews, t.TotalClicks)
	return t
}

// TimeSeries folds records into one charting point per calendar day,
// ordered ascending. Duplicate days are summed so totals stay consistent
// regardless of upstream duplication. Missing days stay absent.
func TimeSeries(records []Record) []Point {
	byDate := make(map[string]*Point)
	for _, r := range records {
		key := r.Date.Format(dateLayout)
		p, ok := byDate[key]
		if !ok {
			p = &Point{Date: key}
			byDate[key] = p
		}
		p.Views += r.Views
		p.Clicks += r.Clicks
	}

	points := make([]Point, 0, len(byDate))
	for _, p := range byDate {
		p.ClickRate = ClickRate(p.Views, p.Clicks)
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// ZeroFill expands a time series to a continuous axis between from and to
// inclusive, inserting zero points for missing days. Use only when the
// caller explicitly needs a gap-free axis.
func ZeroFill(points []Point, from, to time.Time) []Point {
	byDate := make(map[string]Point, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	filled := []Point{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		if p, ok := byDate[key]; ok {
			filled = append(filled, p)
		} else {
			filled = append(filled, Point{Date: key})
		}
	}
	return filled
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
