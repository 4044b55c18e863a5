package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultAPIURL = "https://pay.crypt.bot/"
	TestnetAPIURL = "https://testnet-pay.crypt.bot/"

	// DefaultInvoiceExpiresIn is the maximum payment window accepted by the API (31 days).
	DefaultInvoiceExpiresIn = 2678400
	DefaultPageCount        = 100
	MaxPageCount            = 1000
)

type Config struct {
	ServiceName         string        `koanf:"service_name" mapstructure:"service_name"`
	APIURL              string        `koanf:"api_url" mapstructure:"api_url"`
	Token               string        `koanf:"token" mapstructure:"token"`
	Timeout             time.Duration `koanf:"timeout" mapstructure:"timeout"`
	DefaultExpiresIn    int           `koanf:"default_expires_in" mapstructure:"default_expires_in"`
	DefaultPageCount    int           `koanf:"default_page_count" mapstructure:"default_page_count"`
	DefaultCurrencyType CurrencyType  `koanf:"default_currency_type" mapstructure:"default_currency_type"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName:         "cryptopay",
		APIURL:              DefaultAPIURL,
		DefaultExpiresIn:    DefaultInvoiceExpiresIn,
		DefaultPageCount:    DefaultPageCount,
		DefaultCurrencyType: CurrencyTypeCrypto,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	if strings.TrimSpace(c.APIURL) != "" {
		parsed, err := url.Parse(strings.TrimSpace(c.APIURL))
		if err != nil {
			return fmt.Errorf("core: invalid api_url: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("core: api_url must be absolute")
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("core: timeout must not be negative")
	}
	if c.DefaultExpiresIn < 0 || c.DefaultExpiresIn > DefaultInvoiceExpiresIn {
		return fmt.Errorf("core: default_expires_in must be between 1 and %d", DefaultInvoiceExpiresIn)
	}
	if c.DefaultPageCount < 0 || c.DefaultPageCount > MaxPageCount {
		return fmt.Errorf("core: default_page_count must be between 1 and %d", MaxPageCount)
	}
	switch c.DefaultCurrencyType {
	case "", CurrencyTypeCrypto, CurrencyTypeFiat:
	default:
		return fmt.Errorf("core: unsupported default_currency_type %q", c.DefaultCurrencyType)
	}
	return nil
}

// normalizeAPIURL guarantees a trailing slash so that operation paths can be
// appended directly.
func normalizeAPIURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultAPIURL
	}
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}
	return trimmed
}

func (c Config) expiresIn() int {
	if c.DefaultExpiresIn > 0 {
		return c.DefaultExpiresIn
	}
	return DefaultInvoiceExpiresIn
}

func (c Config) pageCount() int {
	if c.DefaultPageCount > 0 {
		return c.DefaultPageCount
	}
	return DefaultPageCount
}

func (c Config) currencyType() CurrencyType {
	if c.DefaultCurrencyType != "" {
		return c.DefaultCurrencyType
	}
	return CurrencyTypeCrypto
}
