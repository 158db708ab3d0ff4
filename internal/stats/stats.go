package stats

import (
	"sort"

	"github.com/nlatools/nla/internal/domain"
)

// LineParser converts one raw line into a Record or a parse error.
type LineParser interface {
	ParseLine(line string) (domain.Record, error)
}

type urlStats struct {
	count   int
	timeSum float64
	timeMax float64
	times   []float64
}

// URLStats is a finalized per-URL statistic. Median is exact, computed
// over every recorded time for the URL.
type URLStats struct {
	URL        string
	Count      int
	TimeSum    float64
	TimeMax    float64
	TimeMedian float64
}

// Aggregate is the immutable outcome of one full pass over a log.
type Aggregate struct {
	TotalCount int
	TotalTime  float64
	URLs       []URLStats
}

// Aggregator consumes raw log lines one at a time and accumulates
// per-URL statistics alongside total and failed line counts. It owns
// its mutable state exclusively until Finalize hands off a snapshot.
type Aggregator struct {
	parser LineParser
	total  int
	failed int
	urls   map[string]*urlStats
}

func NewAggregator(p LineParser) *Aggregator {
	return &Aggregator{
		parser: p,
		urls:   make(map[string]*urlStats),
	}
}

// Add parses one line and folds it into the running statistics.
// Malformed lines are counted as failures and otherwise ignored.
func (a *Aggregator) Add(line string) {
	a.total++

	record, err := a.parser.ParseLine(line)
	if err != nil {
		a.failed++

		return
	}

	st, ok := a.urls[record.URL]
	if !ok {
		st = &urlStats{}
		a.urls[record.URL] = st
	}

	st.count++
	st.timeSum += record.RequestTime
	st.times = append(st.times, record.RequestTime)

	if record.RequestTime > st.timeMax {
		st.timeMax = record.RequestTime
	}
}

// ErrorRate is the fraction of consumed lines that failed to parse,
// 0 when nothing was consumed.
func (a *Aggregator) ErrorRate() float64 {
	if a.total == 0 {
		return 0
	}

	return float64(a.failed) / float64(a.total)
}

// Finalize computes medians and returns an immutable snapshot of the
// aggregate. It fails with ErrDataQuality when the failed-line ratio
// exceeds threshold, protecting against reporting on a mis-parsed log
// format.
func (a *Aggregator) Finalize(threshold float64) (Aggregate, error) {
	if rate := a.ErrorRate(); rate > threshold {
		return Aggregate{}, NewErrDataQuality(rate, threshold)
	}

	agg := Aggregate{
		URLs: make([]URLStats, 0, len(a.urls)),
	}

	for url, st := range a.urls {
		agg.TotalCount += st.count
		agg.TotalTime += st.timeSum
		agg.URLs = append(agg.URLs, URLStats{
			URL:        url,
			Count:      st.count,
			TimeSum:    st.timeSum,
			TimeMax:    st.timeMax,
			TimeMedian: median(st.times),
		})
	}

	return agg, nil
}

// median sorts in place: Finalize is the single point of handoff, so
// the recorded order is no longer needed.
func median(times []float64) float64 {
	if len(times) == 0 {
		return 0
	}

	sort.Float64s(times)

	mid := len(times) / 2
	if len(times)%2 == 1 {
		return times[mid]
	}

	return (times[mid-1] + times[mid]) / 2
}
