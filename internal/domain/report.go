package domain

// Row is one finalized report entry. JSON field names are the contract
// of the report template and must not change.
type Row struct {
	URL          string  `json:"url"`
	Count        int     `json:"count"`
	CountPercent float64 `json:"count_perc"`
	TimeSum      float64 `json:"time_sum"`
	TimePercent  float64 `json:"time_perc"`
	TimeAvg      float64 `json:"time_avg"`
	TimeMax      float64 `json:"time_max"`
	TimeMedian   float64 `json:"time_med"`
}

func NewRow(
	url string,
	count int,
	countPercent, timeSum, timePercent, timeAvg, timeMax, timeMedian float64,
) Row {
	return Row{
		URL:          url,
		Count:        count,
		CountPercent: countPercent,
		TimeSum:      timeSum,
		TimePercent:  timePercent,
		TimeAvg:      timeAvg,
		TimeMax:      timeMax,
		TimeMedian:   timeMedian,
	}
}
