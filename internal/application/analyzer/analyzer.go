package analyzer

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nlatools/nla/internal/config"
	"github.com/nlatools/nla/internal/domain"
	"github.com/nlatools/nla/internal/logfile"
	"github.com/nlatools/nla/internal/logging"
	"github.com/nlatools/nla/internal/parser"
	"github.com/nlatools/nla/internal/reader"
	"github.com/nlatools/nla/internal/report"
	"github.com/nlatools/nla/internal/stats"
)

const defaultConfigPath = "data/config.json"

// Start wires up the CLI and executes one analyzer run.
func Start() error {
	var configPath string

	cmd := &cobra.Command{
		Use:           "nla",
		Short:         "Aggregate nginx access-log response times into an HTML report",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to JSON config file")

	return cmd.Execute()
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.StructLogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	log := logger.WithField("run_id", uuid.NewString())
	log.WithField("config", cfg).Info("config loaded")

	file, err := logfile.Find(cfg.LogDir, logfile.DefaultPrefix)

	var errNoFile logfile.ErrNoFile
	if errors.As(err, &errNoFile) {
		log.WithField("log_dir", cfg.LogDir).Info("no log file to process")

		return nil
	}

	if err != nil {
		log.WithError(err).Error("locate log file")

		return fmt.Errorf("locate log file: %w", err)
	}

	log.WithField("path", file.Path).Info("log file selected")

	if report.Exists(cfg.ReportDir, file.Date) {
		log.WithField("report", report.Path(cfg.ReportDir, file.Date)).
			Info("report already exists")

		return nil
	}

	rows, err := aggregate(cfg, file)
	if err != nil {
		log.WithError(err).Error("aggregate log")

		return err
	}

	path, skipped, err := report.Render(rows, cfg.ReportDir, cfg.DataDir, file.Date)
	if err != nil {
		log.WithError(err).Error("render report")

		return fmt.Errorf("render report: %w", err)
	}

	if skipped {
		log.WithField("report", path).Info("report already exists")

		return nil
	}

	if err := report.CopyAssets(cfg.ReportDir, cfg.DataDir); err != nil {
		log.WithError(err).Warn("copy report assets")
	}

	log.WithField("report", path).Info("report created")
	report.WriteTable(os.Stdout, rows)

	return nil
}

func aggregate(cfg config.Config, file logfile.File) ([]domain.Row, error) {
	src, err := reader.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open log stream: %w", err)
	}
	defer src.Close()

	agg := stats.NewAggregator(parser.New())
	for src.Scan() {
		agg.Add(src.Line())
	}

	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("read log stream: %w", err)
	}

	aggregated, err := agg.Finalize(cfg.ErrorThreshold)
	if err != nil {
		return nil, fmt.Errorf("finalize stats: %w", err)
	}

	return report.Build(aggregated, cfg.ReportSize), nil
}
