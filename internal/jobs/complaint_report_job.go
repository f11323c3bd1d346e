package jobs

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/complaint"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultReportSchedule runs at 08:00 on the first day of every month.
const DefaultReportSchedule = "0 8 1 * *"

type ComplaintReportSender interface {
	Handle(ctx context.Context, cmd commands.SendComplaintReportCommand) error
}

// ComplaintReportJob mails the complaint report of the previous calendar
// month.
type ComplaintReportJob struct {
	handler   ComplaintReportSender
	schedule  string
	recipient string
	cron      *cron.Cron
	now       func() time.Time
	logger    *zap.Logger
}

func NewComplaintReportJob(
	handler ComplaintReportSender,
	schedule string,
	recipient string,
	logger *zap.Logger,
) *ComplaintReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &ComplaintReportJob{
		handler:   handler,
		schedule:  schedule,
		recipient: recipient,
		cron:      cron.New(),
		now:       time.Now,
		logger:    logger.With(zap.String("component", "complaint_report_job")),
	}
}

// Enabled reports whether a recipient is configured.
func (j *ComplaintReportJob) Enabled() bool {
	return j.recipient != ""
}

// Start schedules the job. Without a recipient nothing is scheduled.
func (j *ComplaintReportJob) Start() error {
	if !j.Enabled() {
		j.logger.Info("complaint report job disabled: no recipient configured")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { _ = j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("complaint report job started", zap.String("schedule", j.schedule))
	return nil
}

// Run sends the report for the month before now.
func (j *ComplaintReportJob) Run(ctx context.Context) error {
	from, to := PreviousMonth(j.now())

	cmd, err := commands.NewSendComplaintReportCommand(complaint.DateRangeFilter(from, to), commands.ReportAll, j.recipient)
	if err != nil {
		j.logger.Error("complaint report job misconfigured", zap.Error(err))
		return err
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.Error("complaint report job failed",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (j *ComplaintReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("complaint report job stopped")
}

// PreviousMonth returns the first and last day of the month before now, as
// UTC dates.
func PreviousMonth(now time.Time) (time.Time, time.Time) {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := firstOfThisMonth.AddDate(0, -1, 0)
	to := firstOfThisMonth.AddDate(0, 0, -1)
	return from, to
}
