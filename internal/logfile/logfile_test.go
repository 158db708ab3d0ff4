package logfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlatools/nla/internal/logfile"
)

func createFiles(t *testing.T, names ...string) string {
	dir := t.TempDir()

	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0o644)
		require.NoError(t, err, "file must be created")
	}

	return dir
}

func date(t *testing.T, value string) time.Time {
	tm, err := time.Parse("20060102", value)
	require.NoError(t, err, "date must be parsed")

	return tm
}

func TestFind(t *testing.T) {
	tt := []struct {
		name    string
		files   []string
		want    string
		date    string
		gzipped bool
	}{
		{
			name: "latest date wins over compression",
			files: []string{
				"nginx-access-ui.log-20230101",
				"nginx-access-ui.log-20230215.gz",
			},
			want:    "nginx-access-ui.log-20230215.gz",
			date:    "20230215",
			gzipped: true,
		},
		{
			name: "plain file after gzipped one",
			files: []string{
				"nginx-access-ui.log-20170630.gz",
				"nginx-access-ui.log-20170701",
			},
			want:    "nginx-access-ui.log-20170701",
			date:    "20170701",
			gzipped: false,
		},
		{
			name: "non-matching entries are ignored",
			files: []string{
				"nginx-access-ui.log-20170630",
				"nginx-access-ui.log-20170701.bz2",
				"apache-access.log-20250101",
				"notes.txt",
			},
			want:    "nginx-access-ui.log-20170630",
			date:    "20170630",
			gzipped: false,
		},
		{
			name: "impossible calendar date is ignored",
			files: []string{
				"nginx-access-ui.log-20230101",
				"nginx-access-ui.log-20231301",
			},
			want:    "nginx-access-ui.log-20230101",
			date:    "20230101",
			gzipped: false,
		},
		{
			name: "same date prefers lexicographically last path",
			files: []string{
				"nginx-access-ui.log-20230101",
				"nginx-access-ui.log-20230101.gz",
			},
			want:    "nginx-access-ui.log-20230101.gz",
			date:    "20230101",
			gzipped: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			dir := createFiles(t, tc.files...)

			file, err := logfile.Find(dir, logfile.DefaultPrefix)
			require.NoError(t, err, "file must be found")

			assert.Equal(t, filepath.Join(dir, tc.want), file.Path)
			assert.Equal(t, date(t, tc.date), file.Date)
			assert.Equal(t, tc.gzipped, file.Gzipped)
		})
	}
}

func TestFindNoFile(t *testing.T) {
	tt := []struct {
		name string
		dir  func(t *testing.T) string
	}{
		{
			name: "empty dir",
			dir: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
		},
		{
			name: "absent dir",
			dir: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing")
			},
		},
		{
			name: "no matching entries",
			dir: func(t *testing.T) string {
				t.Helper()

				return createFiles(t, "notes.txt", "nginx-access-ui.log-yesterday")
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := logfile.Find(tc.dir(t), logfile.DefaultPrefix)
			require.Error(t, err, "nothing must be found")

			var errNoFile logfile.ErrNoFile

			assert.ErrorAs(t, err, &errNoFile)
		})
	}
}
