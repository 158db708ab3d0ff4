package stats

import "fmt"

// ErrDataQuality reports that too large a fraction of the log failed
// to parse for the aggregate to be trustworthy.
type ErrDataQuality struct {
	rate      float64
	threshold float64
}

func NewErrDataQuality(rate, threshold float64) ErrDataQuality {
	return ErrDataQuality{
		rate:      rate,
		threshold: threshold,
	}
}

func (e ErrDataQuality) Error() string {
	return fmt.Sprintf(
		"failed-line ratio %.3f exceeds threshold %.3f",
		e.rate, e.threshold,
	)
}
