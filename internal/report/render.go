package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nlatools/nla/internal/domain"
)

const (
	templateName     = "report.html"
	placeholder      = "$table_json"
	reportDateLayout = "2006.01.02"

	tablesorterAsset = "jquery.tablesorter.min.js"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Path is the deterministic report location for a log date.
func Path(reportDir string, date time.Time) string {
	return filepath.Join(reportDir, fmt.Sprintf("report-%s.html", date.Format(reportDateLayout)))
}

// Exists reports whether the report for date has already been written.
func Exists(reportDir string, date time.Time) bool {
	_, err := os.Stat(Path(reportDir, date))

	return err == nil
}

// Render serializes rows into the HTML template from dataDir and
// writes the report for date into reportDir. An existing report is
// left untouched and reported as skipped, which makes reruns safe.
// The write goes through a temporary file renamed into place, so a
// crash mid-write never exposes a partial report under the final name.
func Render(rows []domain.Row, reportDir, dataDir string, date time.Time) (string, bool, error) {
	if err := os.MkdirAll(reportDir, dirPerm); err != nil {
		return "", false, fmt.Errorf("create report dir %q: %w", reportDir, err)
	}

	path := Path(reportDir, date)
	if Exists(reportDir, date) {
		return path, true, nil
	}

	templatePath := filepath.Join(dataDir, templateName)

	template, err := os.ReadFile(templatePath)
	if err != nil {
		return "", false, fmt.Errorf("read report template %q: %w", templatePath, err)
	}

	tableJSON, err := json.Marshal(rows)
	if err != nil {
		return "", false, fmt.Errorf("marshal report rows: %w", err)
	}

	content := strings.ReplaceAll(string(template), placeholder, string(tableJSON))

	tmp, err := os.CreateTemp(reportDir, ".report-*.html")
	if err != nil {
		return "", false, fmt.Errorf("create temp report in %q: %w", reportDir, err)
	}

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return "", false, fmt.Errorf("write temp report %q: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return "", false, fmt.Errorf("close temp report %q: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return "", false, fmt.Errorf("rename report into %q: %w", path, err)
	}

	return path, false, nil
}

// CopyAssets places the table-sorting script next to the generated
// report so the rendered page works standalone. A data dir without
// the script is fine, the template may be self-contained. Best
// effort otherwise: the caller logs a failure and moves on.
func CopyAssets(reportDir, dataDir string) error {
	src, err := os.Open(filepath.Join(dataDir, tablesorterAsset))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("open asset %q: %w", tablesorterAsset, err)
	}
	defer src.Close()

	dstPath := filepath.Join(reportDir, tablesorterAsset)

	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("create asset %q: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy asset %q: %w", dstPath, err)
	}

	return nil
}
