package complaint

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ReturnReason explains why a product came back.
type ReturnReason string

const (
	ReasonNone               ReturnReason = ""
	ReasonDamage             ReturnReason = "damage"
	ReasonDefect             ReturnReason = "defect"
	ReasonExpired            ReturnReason = "expired"
	ReasonWrongItem          ReturnReason = "wrong_item"
	ReasonPackingIssue       ReturnReason = "packing_issue"
	ReasonCustomerChangeMind ReturnReason = "customer_change_mind"
	ReasonOther              ReturnReason = "other"
)

var reasonLabels = map[ReturnReason]string{
	ReasonDamage:             "Damaged",
	ReasonDefect:             "Defective",
	ReasonExpired:            "Expired / Near Expiry",
	ReasonWrongItem:          "Wrong Item",
	ReasonPackingIssue:       "Packing Issue",
	ReasonCustomerChangeMind: "Customer Change of Mind",
	ReasonOther:              "Other",
}

func ParseReturnReason(s string) (ReturnReason, error) {
	r := ReturnReason(strings.ToLower(strings.TrimSpace(s)))
	if r == ReasonNone {
		return ReasonNone, nil
	}
	if _, ok := reasonLabels[r]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("return reason", fmt.Errorf("%q is not a return reason", s))
	}
	return r, nil
}

func (r ReturnReason) Label() string {
	if l, ok := reasonLabels[r]; ok {
		return l
	}
	return string(r)
}

// ReturnLine is one returned product.
type ReturnLine struct {
	Product           string
	Lot               string
	QuantityPurchased decimal.Decimal
	QuantityReturned  decimal.Decimal
	UoM               string
	Reason            ReturnReason
	Remark            string
}

// NewReturnLine requires a product and non-negative quantities.
func NewReturnLine(
	product, lot string,
	purchased, returned decimal.Decimal,
	uom string,
	reason ReturnReason,
	remark string,
) (ReturnLine, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return ReturnLine{}, errs.NewValueIsRequiredError("return line product")
	}
	if purchased.IsNegative() {
		return ReturnLine{}, errs.NewValueIsOutOfRangeError("quantity purchased", purchased.String(), 0, "unbounded")
	}
	if returned.IsNegative() {
		return ReturnLine{}, errs.NewValueIsOutOfRangeError("quantity returned", returned.String(), 0, "unbounded")
	}

	return ReturnLine{
		Product:           product,
		Lot:               strings.TrimSpace(lot),
		QuantityPurchased: purchased,
		QuantityReturned:  returned,
		UoM:               strings.TrimSpace(uom),
		Reason:            reason,
		Remark:            strings.TrimSpace(remark),
	}, nil
}
