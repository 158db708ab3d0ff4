package parser

// ErrMalformedLine marks one unparseable log line. It is counted by
// the aggregator, never fatal on its own.
type ErrMalformedLine struct {
	msg string
}

func NewErrMalformedLine(msg string) error {
	return ErrMalformedLine{
		msg: msg,
	}
}

func (e ErrMalformedLine) Error() string {
	return e.msg
}
