// Package workers holds the server's background jobs.
package workers

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/officehub-dev/officehub/internal/models"
)

// AttendanceCloser closes attendance records that were never signed out.
// It runs on a cron schedule (midnight by default) and stamps the sign-out
// with the moment of closing, flagging the record so reports can tell a
// real sign-out from an administrative one.
type AttendanceCloser struct {
	db       *gorm.DB
	cron     *cron.Cron
	schedule string
	logger   zerolog.Logger
}

// NewAttendanceCloser registers the close-out job on the given schedule
func NewAttendanceCloser(db *gorm.DB, schedule string, log zerolog.Logger) (*AttendanceCloser, error) {
	closer := &AttendanceCloser{
		db:       db,
		cron:     cron.New(),
		schedule: schedule,
		logger:   log,
	}

	if _, err := closer.cron.AddFunc(schedule, closer.Run); err != nil {
		return nil, err
	}

	return closer, nil
}

// Start begins the cron scheduler
func (a *AttendanceCloser) Start() {
	a.cron.Start()
	a.logger.Info().Str("schedule", a.schedule).Msg("Attendance auto-close scheduled")
}

// Stop halts the scheduler, waiting for a running job to finish
func (a *AttendanceCloser) Stop() {
	ctx := a.cron.Stop()
	<-ctx.Done()
}

// Run closes every record still open. Exported so tests and operators can
// trigger a close-out directly.
func (a *AttendanceCloser) Run() {
	now := time.Now().UTC()

	result := a.db.Model(&models.AttendanceRecord{}).
		Where("sign_out_time IS NULL").
		Updates(map[string]interface{}{
			"sign_out_time": now,
			"auto_closed":   true,
		})

	if result.Error != nil {
		a.logger.Error().Err(result.Error).Msg("Attendance auto-close failed")
		return
	}

	if result.RowsAffected > 0 {
		a.logger.Info().
			Int64("closed", result.RowsAffected).
			Msg("Closed attendance records left open")
	}
}
