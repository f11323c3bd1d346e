package jobs

import (
	"fmt"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	complaintReportJob *ComplaintReportJob
}

func NewJobManager(complaintReportJob *ComplaintReportJob) *JobManager {
	return &JobManager{complaintReportJob: complaintReportJob}
}

func (jm *JobManager) StartAll() error {
	if err := jm.complaintReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start complaint report job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.complaintReportJob.Stop()
}
