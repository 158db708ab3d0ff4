package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlatools/nla/internal/parser"
)

func TestParseLine(t *testing.T) {
	tt := []struct {
		name        string
		line        string
		url         string
		requestTime float64
	}{
		{
			name: "typical line",
			line: `1.196.116.32 - - [29/Jun/2017:03:50:22 +0300] ` +
				`"GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" ` +
				`"Lynx/2.49.1 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/3.3.8" "-" ` +
				`"1498697422-2190034393-4708-9752759" "dc7161be3" 0.390`,
			url:         "/api/v2/banner/25019354",
			requestTime: 0.39,
		},
		{
			name: "real ip and bare request id",
			line: `1.99.174.176 3b81f63526fa8 - [29/Jun/2017:03:50:22 +0300] ` +
				`"GET /api/1/photogenic_banners/list/?server_name=WIN7RB4 HTTP/1.1" 200 12 "-" ` +
				`"Python-urllib/2.7" "-" 1498697422-32900793-4708-9752770 "-" 0.133`,
			url:         "/api/1/photogenic_banners/list/?server_name=WIN7RB4",
			requestTime: 0.133,
		},
		{
			name: "integer request time",
			line: `127.0.0.1 - - [29/Jun/2017:03:50:22 +0300] ` +
				`"POST /api/v2/internal/upload HTTP/1.1" 200 19415 "-" "-" "-" ` +
				`"1498697422-2118016444-4708-9752747" "712e90144abee9" 2`,
			url:         "/api/v2/internal/upload",
			requestTime: 2,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			record, err := parser.New().ParseLine(tc.line)
			require.NoError(t, err, "line must be parsed")

			assert.Equal(t, tc.url, record.URL)
			assert.InDelta(t, tc.requestTime, record.RequestTime, 1e-9)
		})
	}
}

func TestParseLineError(t *testing.T) {
	tt := []struct {
		name string
		line string
	}{
		{
			name: "empty line",
			line: "",
		},
		{
			name: "arbitrary text",
			line: "bad content",
		},
		{
			name: "missing quoted request",
			line: `1.196.116.32 - - [29/Jun/2017:03:50:22 +0300] ` +
				`GET /api/v2/banner/25019354 HTTP/1.1 200 927 "-" ` +
				`"Lynx/2.49.1" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" 0.390`,
		},
		{
			name: "non-numeric request time",
			line: `1.196.116.32 - - [29/Jun/2017:03:50:22 +0300] ` +
				`"GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" ` +
				`"Lynx/2.49.1" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" fast`,
		},
		{
			name: "negative request time",
			line: `1.196.116.32 - - [29/Jun/2017:03:50:22 +0300] ` +
				`"GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" ` +
				`"Lynx/2.49.1" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" -0.390`,
		},
		{
			name: "missing request time",
			line: `1.196.116.32 - - [29/Jun/2017:03:50:22 +0300] ` +
				`"GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" ` +
				`"Lynx/2.49.1" "-" "1498697422-2190034393-4708-9752759" "dc7161be3"`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.New().ParseLine(tc.line)
			require.Error(t, err, "malformed line must not parse")

			var errLine parser.ErrMalformedLine

			assert.ErrorAs(t, err, &errLine)
		})
	}
}
