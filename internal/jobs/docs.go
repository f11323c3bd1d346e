// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// ComplaintReportJob mails the "all" complaint report of the previous
// calendar month. Its schedule is a standard five-field cron expression,
// DefaultReportSchedule unless configured, and it stays idle when no
// recipient is configured.
//
//	job := jobs.NewComplaintReportJob(sendReportHandler, cfg.ReportCron, cfg.ReportRecipient, logger)
//	manager := jobs.NewJobManager(job)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// A failed run is logged and retried only at the next scheduled time.
package jobs
