package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateComplaintCommand(t *testing.T) {
	cmd, err := commands.NewCreateComplaintCommand(kernel.NewUUID(), commands.CreateComplaintInput{
		DateReported: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Channel:      "shopee",
		Type:         "product_quality",
		SubIssue:     "Leaking bottle",
		CustomerName: "Nur",
		ReturnLines: []commands.ReturnLineInput{
			{Product: "Serum", QuantityReturned: decimal.NewFromInt(2), Reason: "damage"},
		},
	})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	p := cmd.Params()
	assert.Equal(t, complaint.ChannelShopee, p.Channel)
	assert.Equal(t, complaint.TypeProductQuality, p.Type)
	require.Len(t, p.ReturnLines, 1)
	assert.Equal(t, complaint.ReasonDamage, p.ReturnLines[0].Reason)
	assert.Empty(t, p.Number)
}

func TestNewCreateComplaintCommand_DefaultsDateToToday(t *testing.T) {
	cmd, err := commands.NewCreateComplaintCommand(kernel.NewUUID(), commands.CreateComplaintInput{CustomerName: "Nur"})

	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), cmd.Params().DateReported.Year())
	assert.Equal(t, complaint.ChannelOther, cmd.Params().Channel)
}

func TestNewCreateComplaintCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateComplaintCommand(kernel.NewUUID(), commands.CreateComplaintInput{
		Channel: "pager",
		ReturnLines: []commands.ReturnLineInput{
			{Product: "", Reason: "damage"},
		},
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "return line 1")
}
