package report

import (
	"math"
	"sort"

	"github.com/nlatools/nla/internal/domain"
	"github.com/nlatools/nla/internal/stats"
)

const displayPrecision = 3

func round(v float64) float64 {
	shift := math.Pow10(displayPrecision)

	return math.Round(v*shift) / shift
}

// Build turns a finalized aggregate into report rows: percentages are
// computed against the full aggregate totals, every time value is
// rounded for display, rows are sorted by total time descending and
// truncated to size. The ordering is deterministic: ties on total time
// fall back to count descending, then URL ascending.
func Build(agg stats.Aggregate, size int) []domain.Row {
	rows := make([]domain.Row, 0, len(agg.URLs))

	for _, st := range agg.URLs {
		var countPercent, timePercent float64
		if agg.TotalCount > 0 {
			countPercent = 100 * float64(st.Count) / float64(agg.TotalCount)
		}

		if agg.TotalTime > 0 {
			timePercent = 100 * st.TimeSum / agg.TotalTime
		}

		rows = append(rows, domain.NewRow(
			st.URL,
			st.Count,
			round(countPercent),
			round(st.TimeSum),
			round(timePercent),
			round(st.TimeSum/float64(st.Count)),
			round(st.TimeMax),
			round(st.TimeMedian),
		))
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TimeSum != rows[j].TimeSum {
			return rows[i].TimeSum > rows[j].TimeSum
		}

		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}

		return rows[i].URL < rows[j].URL
	})

	limit := min(size, len(rows))

	return rows[:limit]
}
