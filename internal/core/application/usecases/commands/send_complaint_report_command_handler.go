package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"go.uber.org/zap"
)

// SendComplaintReportCommandHandler mails the complaint summary for a date
// range. The spreadsheet with every selected complaint is attached only
// when at least one complaint was selected.
type SendComplaintReportCommandHandler struct {
	uowFactory ComplaintUoWFactory
	builder    services.ComplaintReportBuilder
	renderer   ports.ComplaintWorkbookRenderer
	mailer     ports.Mailer
	logger     *zap.Logger
}

func NewSendComplaintReportCommandHandler(
	uowFactory ComplaintUoWFactory,
	renderer ports.ComplaintWorkbookRenderer,
	mailer ports.Mailer,
	logger *zap.Logger,
) SendComplaintReportCommandHandler {
	return SendComplaintReportCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewComplaintReportBuilder(),
		renderer:   renderer,
		mailer:     mailer,
		logger:     logger.With(zap.String("component", "complaint_report")),
	}
}

func (h *SendComplaintReportCommandHandler) Handle(ctx context.Context, cmd SendComplaintReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	filter := cmd.Filter()
	repo := h.uowFactory.Create().ComplaintRepository()

	selected, err := repo.Find(ctx, filter)
	if err != nil {
		return err
	}

	counts, err := repo.CountByStatus(ctx, filter.DateFrom, filter.DateTo)
	if err != nil {
		return err
	}

	summary, err := h.builder.Build(filter, selected, counts)
	if err != nil {
		return err
	}

	body, err := RenderComplaintReportBody(summary)
	if err != nil {
		return err
	}

	from := filter.DateFrom.Format(time.DateOnly)
	to := filter.DateTo.Format(time.DateOnly)

	msg := ports.Message{
		To:       []string{cmd.Recipient()},
		Subject:  fmt.Sprintf("%s Monthly Complaints Report (%s → %s)", cmd.Mode().subjectPrefix(), from, to),
		HTMLBody: body,
	}

	if summary.Total > 0 {
		data, renderErr := h.renderer.Render(summary.Complaints)
		if renderErr != nil {
			return renderErr
		}
		msg.Attachments = append(msg.Attachments, ports.Attachment{
			Filename:    fmt.Sprintf("Monthly_Complaints_%s_%s.xlsx", from, to),
			ContentType: ports.XLSXContentType,
			Data:        data,
		})
	}

	if err = h.mailer.Send(ctx, msg); err != nil {
		return err
	}

	h.logger.Info("complaint report sent",
		zap.String("mode", string(cmd.Mode())),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("complaints", summary.Total))

	return nil
}
