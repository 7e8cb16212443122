package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mockmate/interview/internal/models"
	"mockmate/interview/internal/session"
)

// SummaryExporterJob periodically writes the summary record of completed
// sessions to disk so the user keeps an artifact after restart. Session
// state itself stays in memory; only the flat export record persists.
type SummaryExporterJob struct {
	manager *session.Manager
	config  *ExporterConfig
	cron    *cron.Cron
	logger  *zap.Logger
}

type ExporterConfig struct {
	Schedule  string // cron schedule, e.g. "@every 1m"
	ExportDir string
	Enabled   bool
}

func NewSummaryExporterJob(manager *session.Manager, config *ExporterConfig, logger *zap.Logger) *SummaryExporterJob {
	return &SummaryExporterJob{
		manager: manager,
		config:  config,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start begins the scheduled export sweep.
func (job *SummaryExporterJob) Start() error {
	if !job.config.Enabled {
		job.logger.Info("summary export is disabled, skipping scheduler")
		return nil
	}

	_, err := job.cron.AddFunc(job.config.Schedule, func() {
		if err := job.RunExport(); err != nil {
			job.logger.Error("summary export failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}

	job.cron.Start()
	job.logger.Info("summary exporter started", zap.String("schedule", job.config.Schedule))
	return nil
}

// Stop stops the scheduled export sweep.
func (job *SummaryExporterJob) Stop() {
	if job.cron != nil {
		job.cron.Stop()
	}
}

// RunExport performs a single sweep over completed, not yet exported
// sessions.
func (job *SummaryExporterJob) RunExport() error {
	sessions := job.manager.UnexportedSessions()
	if len(sessions) == 0 {
		return nil
	}

	if err := os.MkdirAll(job.config.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	var exported []string
	for _, s := range sessions {
		record := models.NewSummaryExport(s)
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary for session %s: %w", s.ID, err)
		}

		filename := fmt.Sprintf("interview-summary-%s.json", s.ID)
		path := filepath.Join(job.config.ExportDir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}

		exported = append(exported, s.ID)
		job.logger.Info("summary exported",
			zap.String("session_id", s.ID),
			zap.String("file", path))
	}

	job.manager.MarkExported(exported)
	return nil
}
