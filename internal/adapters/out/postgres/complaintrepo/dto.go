// Package complaintrepo persists complaint aggregates with their return
// lines.
package complaintrepo

import (
	"time"

	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// NumberSequence feeds the register numbers.
const NumberSequence = "complaint_number_seq"

type ComplaintDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number           string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	DateReported     time.Time       `gorm:"type:date;not null;index"`
	Channel          string          `gorm:"type:varchar(32);not null"`
	ComplaintType    string          `gorm:"type:varchar(32);not null;default:''"`
	SubIssue         string          `gorm:"type:varchar(255);not null;default:''"`
	CustomerName     string          `gorm:"type:varchar(255);not null"`
	CustomerPhone    string          `gorm:"type:varchar(64)"`
	CustomerEmail    string          `gorm:"type:varchar(255)"`
	Department       string          `gorm:"type:varchar(255);not null;default:''"`
	ChannelTags      pq.StringArray  `gorm:"type:text[]"`
	SaleOrderRef     string          `gorm:"type:varchar(64)"`
	InvoiceRef       string          `gorm:"type:varchar(64)"`
	DeliveryOrderRef string          `gorm:"type:varchar(64)"`
	Description      string          `gorm:"type:text"`
	InternalNote     string          `gorm:"type:text"`
	Resolution       string          `gorm:"type:text"`
	ReturnInvolved   bool            `gorm:"not null;default:false"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	Responsible      string          `gorm:"type:varchar(255)"`
	CreatedAt        time.Time       `gorm:"not null"`
	ReturnLines      []ReturnLineDTO `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
}

func (ComplaintDTO) TableName() string {
	return "complaints"
}

type ReturnLineDTO struct {
	ID                uint64          `gorm:"primaryKey;autoIncrement"`
	ComplaintID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position          int             `gorm:"not null"`
	Product           string          `gorm:"type:varchar(255);not null"`
	Lot               string          `gorm:"type:varchar(64)"`
	QuantityPurchased decimal.Decimal `gorm:"type:numeric(16,4);not null;default:0"`
	QuantityReturned  decimal.Decimal `gorm:"type:numeric(16,4);not null;default:0"`
	UoM               string          `gorm:"column:uom;type:varchar(32)"`
	Reason            string          `gorm:"type:varchar(32)"`
	Remark            string          `gorm:"type:varchar(255)"`
}

func (ReturnLineDTO) TableName() string {
	return "complaint_return_lines"
}

func fromDomain(c *complaint.Complaint) ComplaintDTO {
	id := c.ID().Bytes()
	customer := c.Customer()

	lines := make([]ReturnLineDTO, 0, c.ReturnLineCount())
	for i, l := range c.ReturnLines() {
		lines = append(lines, ReturnLineDTO{
			ComplaintID:       id,
			Position:          i,
			Product:           l.Product,
			Lot:               l.Lot,
			QuantityPurchased: l.QuantityPurchased,
			QuantityReturned:  l.QuantityReturned,
			UoM:               l.UoM,
			Reason:            string(l.Reason),
			Remark:            l.Remark,
		})
	}

	return ComplaintDTO{
		ID:               id,
		Number:           c.Number(),
		DateReported:     c.DateReported(),
		Channel:          string(c.Channel()),
		ComplaintType:    string(c.Type()),
		SubIssue:         c.SubIssue(),
		CustomerName:     customer.Name,
		CustomerPhone:    customer.Phone,
		CustomerEmail:    customer.Email,
		Department:       c.Department(),
		ChannelTags:      pq.StringArray(c.ChannelTags()),
		SaleOrderRef:     c.SaleOrderRef(),
		InvoiceRef:       c.InvoiceRef(),
		DeliveryOrderRef: c.DeliveryOrderRef(),
		Description:      c.Description(),
		InternalNote:     c.InternalNote(),
		Resolution:       c.Resolution(),
		ReturnInvolved:   c.ReturnInvolved(),
		Status:           string(c.Status()),
		Responsible:      c.Responsible(),
		CreatedAt:        c.CreatedAt(),
		ReturnLines:      lines,
	}
}

func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]complaint.ReturnLine, 0, len(dto.ReturnLines))
	for _, l := range dto.ReturnLines {
		lines = append(lines, complaint.ReturnLine{
			Product:           l.Product,
			Lot:               l.Lot,
			QuantityPurchased: l.QuantityPurchased,
			QuantityReturned:  l.QuantityReturned,
			UoM:               l.UoM,
			Reason:            complaint.ReturnReason(l.Reason),
			Remark:            l.Remark,
		})
	}

	return complaint.RestoreComplaint(id, complaint.Params{
		Number:       dto.Number,
		DateReported: dto.DateReported,
		Channel:      complaint.Channel(dto.Channel),
		Type:         complaint.Type(dto.ComplaintType),
		SubIssue:     dto.SubIssue,
		Customer: complaint.Customer{
			Name:  dto.CustomerName,
			Phone: dto.CustomerPhone,
			Email: dto.CustomerEmail,
		},
		Department:       dto.Department,
		ChannelTags:      dto.ChannelTags,
		SaleOrderRef:     dto.SaleOrderRef,
		InvoiceRef:       dto.InvoiceRef,
		DeliveryOrderRef: dto.DeliveryOrderRef,
		Description:      dto.Description,
		InternalNote:     dto.InternalNote,
		Resolution:       dto.Resolution,
		ReturnInvolved:   dto.ReturnInvolved,
		ReturnLines:      lines,
		Responsible:      dto.Responsible,
	}, complaint.Status(dto.Status), dto.CreatedAt)
}
