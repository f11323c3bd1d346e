package consignment

import (
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

const (
	addressLineLimit = 50

	defaultCountryCode  = "MY"
	defaultEmail        = "no-reply@example.com"
	defaultCompanyName  = "Company"
	defaultReceiverName = "Receiver"

	ParcelType    = "Parcel"
	ParcelContent = "Goods"
	ParcelPieces  = 1
	ParcelValue   = 0
	ParcelLength  = 20
	ParcelWidth   = 15
	ParcelHeight  = 10
)

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is one entry of the carrier's receivers array.
type Parcel struct {
	Weight           int
	CompanyName      string
	ReceiverName     string
	ReceiverMobile   string
	ReceiverEmail    string
	ReceiverAddress1 string
	ReceiverAddress2 string
	ReceiverAddress3 string
	ReceiverPostcode string
	ReceiverCity     string
	ReceiverState    string
	ReceiverCountry  string

	guard guard.ConstructorGuard
}

// NewParcel builds the descriptor for s. The destination must carry a mobile
// number, a city and a postcode.
func NewParcel(s *shipment.Shipment) (Parcel, error) {
	if err := s.Validate(); err != nil {
		return Parcel{}, err
	}

	dest := s.Destination()
	if err := dest.ValidateForConsignment(); err != nil {
		return Parcel{}, err
	}

	return Parcel{
		Weight:           s.Weight().Units(),
		CompanyName:      orDefault(s.CompanyName(), defaultCompanyName),
		ReceiverName:     orDefault(dest.Name(), defaultReceiverName),
		ReceiverMobile:   dest.Mobile(),
		ReceiverEmail:    orDefault(dest.Email(), defaultEmail),
		ReceiverAddress1: truncate(dest.Street(), addressLineLimit),
		ReceiverAddress2: truncate(dest.Street2(), addressLineLimit),
		ReceiverAddress3: truncate(dest.City(), addressLineLimit),
		ReceiverPostcode: dest.Postcode(),
		ReceiverCity:     dest.City(),
		ReceiverState:    dest.State(),
		ReceiverCountry:  orDefault(dest.CountryCode(), defaultCountryCode),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// truncate cuts s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
