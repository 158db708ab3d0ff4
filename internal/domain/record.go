package domain

// Record is one successfully parsed access-log line: the requested URL
// and the time the server spent serving it, in seconds.
type Record struct {
	URL         string
	RequestTime float64
}

func NewRecord(url string, requestTime float64) Record {
	return Record{
		URL:         url,
		RequestTime: requestTime,
	}
}
