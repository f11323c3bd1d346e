package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ReturnLine struct {
	Product           string          `json:"product" validate:"required"`
	Lot               string          `json:"lot"`
	QuantityPurchased decimal.Decimal `json:"quantityPurchased"`
	QuantityReturned  decimal.Decimal `json:"quantityReturned"`
	UoM               string          `json:"uom"`
	Reason            string          `json:"reason"`
	Remark            string          `json:"remark"`
}

type NewComplaint struct {
	DateReported     string       `json:"dateReported" validate:"omitempty,datetime=2006-01-02"`
	Channel          string       `json:"channel"`
	ComplaintType    string       `json:"complaintType"`
	SubIssue         string       `json:"subIssue"`
	CustomerName     string       `json:"customerName" validate:"required"`
	CustomerPhone    string       `json:"customerPhone"`
	CustomerEmail    string       `json:"customerEmail" validate:"omitempty,email"`
	Department       string       `json:"department"`
	ChannelTags      []string     `json:"channelTags"`
	SaleOrderRef     string       `json:"saleOrderRef"`
	InvoiceRef       string       `json:"invoiceRef"`
	DeliveryOrderRef string       `json:"deliveryOrderRef"`
	Description      string       `json:"description"`
	InternalNote     string       `json:"internalNote"`
	Resolution       string       `json:"resolution"`
	ReturnInvolved   bool         `json:"returnInvolved"`
	ReturnLines      []ReturnLine `json:"returnLines" validate:"dive"`
	Responsible      string       `json:"responsible"`
}

type CreatedComplaint struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type ComplaintListItem struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	DateReported    string          `json:"dateReported"`
	Channel         string          `json:"channel"`
	ComplaintType   string          `json:"complaintType"`
	CustomerName    string          `json:"customerName"`
	Department      string          `json:"department"`
	Status          string          `json:"status"`
	ReturnInvolved  bool            `json:"returnInvolved"`
	ReturnLineCount int             `json:"returnLineCount"`
	ReturnTotalQty  decimal.Decimal `json:"returnTotalQty"`
}

type StatusChange struct {
	Status string `json:"status" validate:"required"`
}

type ReportRequest struct {
	DateFrom       string   `json:"dateFrom" validate:"required,datetime=2006-01-02"`
	DateTo         string   `json:"dateTo" validate:"required,datetime=2006-01-02"`
	Recipient      string   `json:"recipient" validate:"required,email"`
	Mode           string   `json:"mode" validate:"omitempty,oneof=all filtered"`
	Departments    []string `json:"departments"`
	ComplaintType  string   `json:"complaintType"`
	SubIssue       string   `json:"subIssue"`
	ReturnInvolved bool     `json:"returnInvolved"`
	ChannelTags    []string `json:"channelTags"`
	Status         string   `json:"status"`
}

// CreateComplaint handles POST /api/v1/complaints.
func (s *Server) CreateComplaint(ctx echo.Context) error {
	var req NewComplaint
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	var reported time.Time
	if req.DateReported != "" {
		reported, _ = time.Parse(time.DateOnly, req.DateReported)
	}

	lines := make([]commands.ReturnLineInput, 0, len(req.ReturnLines))
	for _, l := range req.ReturnLines {
		lines = append(lines, commands.ReturnLineInput{
			Product:           l.Product,
			Lot:               l.Lot,
			QuantityPurchased: l.QuantityPurchased,
			QuantityReturned:  l.QuantityReturned,
			UoM:               l.UoM,
			Reason:            l.Reason,
			Remark:            l.Remark,
		})
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateComplaintCommand(id, commands.CreateComplaintInput{
		DateReported:     reported,
		Channel:          req.Channel,
		Type:             req.ComplaintType,
		SubIssue:         req.SubIssue,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		Department:       req.Department,
		ChannelTags:      req.ChannelTags,
		SaleOrderRef:     req.SaleOrderRef,
		InvoiceRef:       req.InvoiceRef,
		DeliveryOrderRef: req.DeliveryOrderRef,
		Description:      req.Description,
		InternalNote:     req.InternalNote,
		Resolution:       req.Resolution,
		ReturnInvolved:   req.ReturnInvolved,
		ReturnLines:      lines,
		Responsible:      req.Responsible,
	})
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	number, err := s.handlers.CreateComplaint.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusCreated, CreatedComplaint{ID: id.String(), Number: number})
}

// ListComplaints handles GET /api/v1/complaints?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (s *Server) ListComplaints(ctx echo.Context) error {
	from, err := queryDate(ctx, "from")
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}
	to, err := queryDate(ctx, "to")
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	query, err := queries.NewListComplaintsQuery(from, to)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	list, err := s.handlers.ListComplaints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	response := make([]ComplaintListItem, len(list))
	for i, c := range list {
		response[i] = ComplaintListItem{
			ID:              c.ID.String(),
			Number:          c.Number,
			DateReported:    c.DateReported.Format(time.DateOnly),
			Channel:         c.Channel,
			ComplaintType:   c.ComplaintType,
			CustomerName:    c.CustomerName,
			Department:      c.Department,
			Status:          c.Status,
			ReturnInvolved:  c.ReturnInvolved,
			ReturnLineCount: c.ReturnLineCount,
			ReturnTotalQty:  c.ReturnTotalQty,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeComplaintStatus handles PATCH /api/v1/complaints/:id/status.
func (s *Server) ChangeComplaintStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	var req StatusChange
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeComplaintStatusCommand(id, req.Status)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	if err = s.handlers.ChangeComplaintStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendComplaintReport handles POST /api/v1/complaints/report. The mail is
// sent before the response is written.
func (s *Server) SendComplaintReport(ctx echo.Context) error {
	var req ReportRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	filter, err := req.filter()
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewSendComplaintReportCommand(filter, commands.ReportMode(req.Mode), req.Recipient)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	if err = s.handlers.SendComplaintReport.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (r ReportRequest) filter() (complaint.Filter, error) {
	from, _ := time.Parse(time.DateOnly, r.DateFrom)
	to, _ := time.Parse(time.DateOnly, r.DateTo)

	complaintType, err := complaint.ParseType(r.ComplaintType)
	if err != nil {
		return complaint.Filter{}, err
	}

	var status complaint.Status
	if r.Status != "" {
		if status, err = complaint.ParseStatus(r.Status); err != nil {
			return complaint.Filter{}, err
		}
	}

	return complaint.Filter{
		DateFrom:           from,
		DateTo:             to,
		Departments:        r.Departments,
		Type:               complaintType,
		SubIssue:           r.SubIssue,
		ReturnInvolvedOnly: r.ReturnInvolved,
		ChannelTags:        r.ChannelTags,
		Status:             status,
	}, nil
}

func queryDate(ctx echo.Context, name string) (time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError(name)
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return t, nil
}
