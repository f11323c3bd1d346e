package consignment

import "strings"

const (
	SandboxBaseURL    = "https://myopenapi.gdexpress.com/api/demo/prime"
	ProductionBaseURL = "https://myopenapi.gdexpress.com/api/prime"
)

// Configuration keys of the carrier settings in the key/value store.
const (
	KeyAPIToken        = "delivery_gdex.api_token"
	KeyAccountNo       = "delivery_gdex.account_no"
	KeySubscriptionKey = "delivery_gdex.subscription_key"
	KeyUseSandbox      = "delivery_gdex.use_sandbox"
)

// SettingsParams are the raw values read from configuration.
type SettingsParams struct {
	APIToken        string
	AccountNo       string
	SubscriptionKey string
	UseSandbox      string
}

// Credentials authenticate a consignment request.
type Credentials struct {
	APIToken        string
	AccountNo       string
	SubscriptionKey string
}

// Settings are the credentials plus the endpoint selection, read fresh for
// every submission.
type Settings struct {
	credentials Credentials
	useSandbox  bool
}

// NewSettings refuses incomplete credentials.
func NewSettings(p SettingsParams) (Settings, error) {
	creds := Credentials{
		APIToken:        strings.TrimSpace(p.APIToken),
		AccountNo:       strings.TrimSpace(p.AccountNo),
		SubscriptionKey: strings.TrimSpace(p.SubscriptionKey),
	}

	var missing []string
	if creds.APIToken == "" {
		missing = append(missing, KeyAPIToken)
	}
	if creds.AccountNo == "" {
		missing = append(missing, KeyAccountNo)
	}
	if creds.SubscriptionKey == "" {
		missing = append(missing, KeySubscriptionKey)
	}
	if len(missing) > 0 {
		return Settings{}, &MissingConfigurationError{Keys: missing}
	}

	return Settings{credentials: creds, useSandbox: ParseSandboxFlag(p.UseSandbox)}, nil
}

// ParseSandboxFlag reads the stored toggle. An unset flag means sandbox.
func ParseSandboxFlag(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "1", "True", "true":
		return true
	default:
		return false
	}
}

func (s Settings) Credentials() Credentials { return s.credentials }
func (s Settings) UseSandbox() bool { return s.useSandbox }

func (s Settings) BaseURL() string {
	if s.useSandbox {
		return SandboxBaseURL
	}
	return ProductionBaseURL
}
