package parser

import (
	"regexp"
	"strconv"

	"github.com/nlatools/nla/internal/domain"
)

// Parser extracts the request URL and request time from access-log
// lines written in the nginx ui_short format:
//
//	$remote_addr $remote_user $http_x_real_ip [$time_local] "$request"
//	$status $body_bytes_sent "$http_referer" "$http_user_agent"
//	"$http_x_forwarded_for" $request_id "$rb_user" $request_time
type Parser struct {
	regex *regexp.Regexp
}

func New() *Parser {
	regex := regexp.MustCompile(
		`^(\S+)\s+(\S+)\s+(\S+)\s+\[([^\]]+)\]\s+"(\S+) (\S+) (\S+)"\s+` +
			`(\d+)\s+(\d+)\s+"([^"]*)"\s+"([^"]*)"\s+"([^"]*)"\s+(\S+)\s+"([^"]*)"\s+` +
			`(\d+(?:\.\d+)?)\s*$`,
	)

	return &Parser{
		regex: regex,
	}
}

const requestTimeBits = 64

// ParseLine converts one raw line into a Record. A line that does not
// match the grammar, or whose trailing request time is not a valid
// non-negative number, yields an ErrMalformedLine; callers count such
// lines and continue.
func (p *Parser) ParseLine(line string) (domain.Record, error) {
	matches := p.regex.FindStringSubmatch(line)
	if matches == nil {
		return domain.Record{}, NewErrMalformedLine("line does not match log format")
	}

	requestTime, err := strconv.ParseFloat(matches[15], requestTimeBits)
	if err != nil || requestTime < 0 {
		return domain.Record{}, NewErrMalformedLine("invalid request time")
	}

	return domain.NewRecord(matches[6], requestTime), nil
}
