// Package shipmentrepo persists shipment aggregates in the shipments table.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

type ShipmentDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Reference      string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Direction      string     `gorm:"type:varchar(16);not null"`
	Destination    ContactDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Weight         string     `gorm:"type:varchar(64);not null;default:''"`
	CompanyName    string     `gorm:"type:varchar(255);not null;default:''"`
	TrackingNumber string     `gorm:"type:varchar(64);not null;default:'';index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type ContactDTO struct {
	Name        string `gorm:"type:varchar(255)"`
	Mobile      string `gorm:"type:varchar(64)"`
	Email       string `gorm:"type:varchar(255)"`
	Street      string `gorm:"type:varchar(255)"`
	Street2     string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(128)"`
	Postcode    string `gorm:"type:varchar(16)"`
	State       string `gorm:"type:varchar(128)"`
	CountryCode string `gorm:"type:varchar(2)"`
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	c := s.Destination().Params()

	return ShipmentDTO{
		ID:        s.ID().Bytes(),
		Reference: s.Reference(),
		Direction: s.Direction().String(),
		Destination: ContactDTO{
			Name:        c.Name,
			Mobile:      c.Mobile,
			Email:       c.Email,
			Street:      c.Street,
			Street2:     c.Street2,
			City:        c.City,
			Postcode:    c.Postcode,
			State:       c.State,
			CountryCode: c.CountryCode,
		},
		Weight:         s.Weight().Raw(),
		CompanyName:    s.CompanyName(),
		TrackingNumber: s.TrackingNumber(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	direction, err := shipment.ParseDirection(dto.Direction)
	if err != nil {
		return nil, err
	}

	contact := kernel.NewContact(kernel.ContactParams{
		Name:        dto.Destination.Name,
		Mobile:      dto.Destination.Mobile,
		Email:       dto.Destination.Email,
		Street:      dto.Destination.Street,
		Street2:     dto.Destination.Street2,
		City:        dto.Destination.City,
		Postcode:    dto.Destination.Postcode,
		State:       dto.Destination.State,
		CountryCode: dto.Destination.CountryCode,
	})

	return shipment.RestoreShipment(
		id,
		dto.Reference,
		direction,
		contact,
		kernel.NewWeight(dto.Weight),
		dto.CompanyName,
		dto.TrackingNumber,
	)
}
