package ports

import (
	"context"

	"logistics/internal/core/domain/model/complaint"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer delivers a message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ComplaintWorkbookRenderer renders complaints as a spreadsheet file.
type ComplaintWorkbookRenderer interface {
	Render(complaints []*complaint.Complaint) ([]byte, error)
}
