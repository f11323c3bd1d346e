package kernel

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// ContactParams carries the raw contact fields read from the host record.
// Every field is optional at construction time; required-ness depends on
// what the contact is used for.
type ContactParams struct {
	Name        string
	Mobile      string
	Email       string
	Street      string
	Street2     string
	City        string
	Postcode    string
	State       string
	CountryCode string
}

// Contact is the destination party of a shipment.
type Contact struct {
	name        string
	mobile      string
	email       string
	street      string
	street2     string
	city        string
	postcode    string
	state       string
	countryCode string

	guard guard.ConstructorGuard
}

// NewContact trims every field and upper-cases the country code.
func NewContact(p ContactParams) Contact {
	return Contact{
		name:        strings.TrimSpace(p.Name),
		mobile:      strings.TrimSpace(p.Mobile),
		email:       strings.TrimSpace(p.Email),
		street:      strings.TrimSpace(p.Street),
		street2:     strings.TrimSpace(p.Street2),
		city:        strings.TrimSpace(p.City),
		postcode:    strings.TrimSpace(p.Postcode),
		state:       strings.TrimSpace(p.State),
		countryCode: strings.ToUpper(strings.TrimSpace(p.CountryCode)),
		guard:       guard.NewConstructorGuard(),
	}
}

func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// ValidateForConsignment checks the fields a courier needs, in order:
// mobile first, then city and postcode together.
func (c Contact) ValidateForConsignment() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.mobile == "" {
		return errs.NewValueIsRequiredError("receiver mobile")
	}
	if c.city == "" || c.postcode == "" {
		return errs.NewValueIsRequiredError("receiver city and postcode")
	}
	return nil
}

func (c Contact) Name() string { return c.name }
func (c Contact) Mobile() string { return c.mobile }
func (c Contact) Email() string { return c.email }
func (c Contact) Street() string { return c.street }
func (c Contact) Street2() string { return c.street2 }
func (c Contact) City() string { return c.city }
func (c Contact) Postcode() string { return c.postcode }
func (c Contact) State() string { return c.state }
func (c Contact) CountryCode() string { return c.countryCode }

// Params returns the contact fields, used by the persistence adapters.
func (c Contact) Params() ContactParams {
	return ContactParams{
		Name:        c.name,
		Mobile:      c.mobile,
		Email:       c.email,
		Street:      c.street,
		Street2:     c.street2,
		City:        c.city,
		Postcode:    c.postcode,
		State:       c.state,
		CountryCode: c.countryCode,
	}
}
