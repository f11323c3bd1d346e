package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/consignment"
	"logistics/internal/pkg/guard"
)

var ErrUpdateCarrierSettingsCommandIsNotConstructed = errors.New(
	"UpdateCarrierSettingsCommand must be created via NewUpdateCarrierSettingsCommand constructor",
)

// UpdateCarrierSettingsCommand replaces the stored carrier settings. Blank
// credentials are accepted and stored as blanks; submissions then fail with
// a missing configuration error until they are filled in.
type UpdateCarrierSettingsCommand struct {
	values map[string]string

	guard guard.ConstructorGuard
}

func NewUpdateCarrierSettingsCommand(apiToken, accountNo, subscriptionKey string, useSandbox bool) UpdateCarrierSettingsCommand {
	sandbox := "False"
	if useSandbox {
		sandbox = "True"
	}

	return UpdateCarrierSettingsCommand{
		values: map[string]string{
			consignment.KeyAPIToken:        strings.TrimSpace(apiToken),
			consignment.KeyAccountNo:       strings.TrimSpace(accountNo),
			consignment.KeySubscriptionKey: strings.TrimSpace(subscriptionKey),
			consignment.KeyUseSandbox:      sandbox,
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (c UpdateCarrierSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierSettingsCommandIsNotConstructed)
}

// Keys returns the configuration keys in a stable order.
func (c UpdateCarrierSettingsCommand) Keys() []string {
	return []string{
		consignment.KeyAPIToken,
		consignment.KeyAccountNo,
		consignment.KeySubscriptionKey,
		consignment.KeyUseSandbox,
	}
}

func (c UpdateCarrierSettingsCommand) Value(key string) string {
	return c.values[key]
}
