package complaint

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint constructor")

// FormatNumber renders a register number, e.g. CC/2025/00042.
func FormatNumber(year int, seq int64) string {
	return fmt.Sprintf("CC/%d/%05d", year, seq)
}

// Customer is the party who complained.
type Customer struct {
	Name  string
	Phone string
	Email string
}

// Params are the fields a complaint is registered with.
type Params struct {
	Number           string
	DateReported     time.Time
	Channel          Channel
	Type             Type
	SubIssue         string
	Customer         Customer
	Department       string
	ChannelTags      []string
	SaleOrderRef     string
	InvoiceRef       string
	DeliveryOrderRef string
	Description      string
	InternalNote     string
	Resolution       string
	ReturnInvolved   bool
	ReturnLines      []ReturnLine
	Responsible      string
}

// Complaint is the aggregate root of the register.
//
// Invariants:
//   - valid identifier, number and reported date
//   - named customer
//   - valid channel and status
//   - sub-issue only for types that have one
type Complaint struct {
	id               kernel.UUID
	number           string
	dateReported     time.Time
	channel          Channel
	complaintType    Type
	subIssue         string
	customer         Customer
	department       string
	channelTags      []string
	saleOrderRef     string
	invoiceRef       string
	deliveryOrderRef string
	description      string
	internalNote     string
	resolution       string
	returnInvolved   bool
	returnLines      []ReturnLine
	status           Status
	responsible      string
	createdAt        time.Time

	isConstructed bool
}

// NewComplaint registers a complaint in status new.
func NewComplaint(id kernel.UUID, p Params, now time.Time) (*Complaint, error) {
	return RestoreComplaint(id, p, StatusNew, now)
}

// RestoreComplaint rebuilds a persisted complaint.
func RestoreComplaint(id kernel.UUID, p Params, status Status, createdAt time.Time) (*Complaint, error) {
	if p.Channel == "" {
		p.Channel = ChannelOther
	}

	c := &Complaint{
		subIssue:         strings.TrimSpace(p.SubIssue),
		department:       strings.TrimSpace(p.Department),
		channelTags:      cleanTags(p.ChannelTags),
		saleOrderRef:     strings.TrimSpace(p.SaleOrderRef),
		invoiceRef:       strings.TrimSpace(p.InvoiceRef),
		deliveryOrderRef: strings.TrimSpace(p.DeliveryOrderRef),
		description:      p.Description,
		internalNote:     p.InternalNote,
		resolution:       p.Resolution,
		returnInvolved:   p.ReturnInvolved,
		returnLines:      append([]ReturnLine(nil), p.ReturnLines...),
		responsible:      strings.TrimSpace(p.Responsible),
		createdAt:        createdAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setNumber(p.Number),
		c.setDateReported(p.DateReported),
		c.setChannel(p.Channel),
		c.setType(p.Type),
		c.setCustomer(p.Customer),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	if c.subIssue != "" && !c.complaintType.HasSubIssue() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"sub issue",
			fmt.Errorf("complaint type %q has no sub issues", string(c.complaintType)),
		)
	}

	return c, nil
}

func (c *Complaint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComplaintIsNotConstructed
	}
	return nil
}

func (c *Complaint) ID() kernel.UUID { return c.id }
func (c *Complaint) Number() string { return c.number }
func (c *Complaint) DateReported() time.Time { return c.dateReported }
func (c *Complaint) Channel() Channel { return c.channel }
func (c *Complaint) Type() Type { return c.complaintType }
func (c *Complaint) SubIssue() string { return c.subIssue }
func (c *Complaint) Customer() Customer { return c.customer }
func (c *Complaint) Department() string { return c.department }
func (c *Complaint) ChannelTags() []string { return append([]string(nil), c.channelTags...) }
func (c *Complaint) SaleOrderRef() string { return c.saleOrderRef }
func (c *Complaint) InvoiceRef() string { return c.invoiceRef }
func (c *Complaint) DeliveryOrderRef() string { return c.deliveryOrderRef }
func (c *Complaint) Description() string { return c.description }
func (c *Complaint) InternalNote() string { return c.internalNote }
func (c *Complaint) Resolution() string { return c.resolution }
func (c *Complaint) ReturnInvolved() bool { return c.returnInvolved }
func (c *Complaint) Status() Status { return c.status }
func (c *Complaint) Responsible() string { return c.responsible }
func (c *Complaint) CreatedAt() time.Time { return c.createdAt }
func (c *Complaint) ReturnLines() []ReturnLine { return append([]ReturnLine(nil), c.returnLines...) }
func (c *Complaint) ReturnLineCount() int { return len(c.returnLines) }

// ReturnTotalQty sums the returned quantities of all lines.
func (c *Complaint) ReturnTotalQty() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.returnLines {
		total = total.Add(l.QuantityReturned)
	}
	return total
}

// ChangeStatus moves the complaint to status. Any valid status is accepted.
func (c *Complaint) ChangeStatus(status Status) error {
	return c.setStatus(status)
}

// SetResolution records how the complaint was handled.
func (c *Complaint) SetResolution(resolution string) {
	c.resolution = resolution
}

func (c *Complaint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Complaint) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("complaint number")
	}
	c.number = number
	return nil
}

func (c *Complaint) setDateReported(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("date reported")
	}
	y, m, day := d.Date()
	c.dateReported = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

func (c *Complaint) setChannel(ch Channel) error {
	if _, ok := channelLabels[ch]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not a complaint channel", string(ch)))
	}
	c.channel = ch
	return nil
}

func (c *Complaint) setType(t Type) error {
	if t == TypeNone {
		c.complaintType = t
		return nil
	}
	if _, ok := typeLabels[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("complaint type", fmt.Errorf("%q is not a complaint type", string(t)))
	}
	c.complaintType = t
	return nil
}

func (c *Complaint) setCustomer(customer Customer) error {
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Email = strings.TrimSpace(customer.Email)
	c.customer = customer
	return nil
}

func (c *Complaint) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
