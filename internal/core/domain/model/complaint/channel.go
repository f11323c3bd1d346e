package complaint

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Channel is how the complaint reached the company.
type Channel string

const (
	ChannelPhone       Channel = "phone"
	ChannelWhatsApp    Channel = "whatsapp"
	ChannelEmail       Channel = "email"
	ChannelShopee      Channel = "shopee"
	ChannelTikTok      Channel = "tiktok"
	ChannelMarketplace Channel = "marketplace"
	ChannelWalkIn      Channel = "walk_in"
	ChannelOther       Channel = "other"
)

var channelLabels = map[Channel]string{
	ChannelPhone:       "Phone Call",
	ChannelWhatsApp:    "WhatsApp",
	ChannelEmail:       "Email",
	ChannelShopee:      "Shopee",
	ChannelTikTok:      "TikTok Shop",
	ChannelMarketplace: "Other Marketplace",
	ChannelWalkIn:      "Walk-in",
	ChannelOther:       "Other",
}

// ParseChannel reads a channel code. An empty code means ChannelOther.
func ParseChannel(s string) (Channel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ChannelOther, nil
	}
	c := Channel(s)
	if _, ok := channelLabels[c]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not a complaint channel", s))
	}
	return c, nil
}

func (c Channel) Label() string {
	if l, ok := channelLabels[c]; ok {
		return l
	}
	return string(c)
}

// Type classifies a complaint. The zero value means not classified.
type Type string

const (
	TypeNone           Type = ""
	TypeProductQuality Type = "product_quality"
	TypeDeliveryIssue  Type = "delivery_issue"
	TypeBillingIssue   Type = "billing_issue"
	TypeService        Type = "service"
	TypeReturnRequest  Type = "return_request"
	TypeOther          Type = "other"
)

var typeLabels = map[Type]string{
	TypeProductQuality: "Product Quality",
	TypeDeliveryIssue:  "Delivery / Shipping",
	TypeBillingIssue:   "Billing / Payment",
	TypeService:        "Customer Service",
	TypeReturnRequest:  "Product Return Only",
	TypeOther:          "Other",
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t == TypeNone {
		return TypeNone, nil
	}
	if _, ok := typeLabels[t]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("complaint type", fmt.Errorf("%q is not a complaint type", s))
	}
	return t, nil
}

func (t Type) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// HasSubIssue reports whether complaints of this type carry a sub-issue.
func (t Type) HasSubIssue() bool {
	switch t {
	case TypeProductQuality, TypeDeliveryIssue, TypeBillingIssue, TypeService:
		return true
	default:
		return false
	}
}
