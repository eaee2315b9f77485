package gateway

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	ac "github.com/coinpayd/addrcheck"
	"github.com/coinpayd/addrcheck/config"
	"github.com/coinpayd/addrcheck/factory"
)

// Settings holds the gateway-facing options that are not part of the
// validation core: the URI scheme used in deposit links per chain.
type Settings struct {
	URISchemes map[string]string `yaml:"uri_schemes" mapstructure:"uri_schemes"`
}

// DefaultSettings returns the BIP-21 style URI schemes for the built-in
// chains.
func DefaultSettings() *Settings {
	return &Settings{
		URISchemes: map[string]string{
			string(ac.BTC):  "bitcoin",
			string(ac.LTC):  "litecoin",
			string(ac.DOGE): "dogecoin",
			string(ac.DASH): "dash",
			string(ac.ZEC):  "zcash",
			string(ac.XMR):  "monero",
			string(ac.LN):   "lightning",
		},
	}
}

// LoadSettings reads the optional "gateway" section of the configuration
// file, falling back to defaults when absent.
func LoadSettings() (*Settings, error) {
	settings := &Settings{}
	if err := config.Load("gateway", settings, DefaultSettings()); err != nil {
		return nil, err
	}
	if len(settings.URISchemes) == 0 {
		settings.URISchemes = DefaultSettings().URISchemes
	}
	return settings, nil
}

func (s *Settings) uriScheme(chain ac.Chain) (string, bool) {
	scheme, ok := s.URISchemes[string(chain)]
	return scheme, ok
}

// Gateway is the consumer-facing surface a payment plugin integrates
// against: deposit link construction, link parsing, and the total
// boolean validation contract. Every decision delegates to the
// per-scheme validators; rejection reasons surface only as debug logs
// and never change an outcome.
type Gateway struct {
	registry *factory.Registry
	settings *Settings
}

func New(registry *factory.Registry, settings *Settings) *Gateway {
	return &Gateway{registry: registry, settings: settings}
}

// NewDefaults builds a gateway over the built-in chain registry.
func NewDefaults() *Gateway {
	return New(factory.NewDefaultRegistry(), DefaultSettings())
}

// BuildURL renders a payment link without an amount.
func (g *Gateway) BuildURL(chain ac.Chain, address ac.Address) (string, error) {
	scheme, ok := g.settings.uriScheme(chain)
	if !ok {
		return "", fmt.Errorf("no URI scheme configured for chain %s", chain)
	}
	return scheme + ":" + string(address), nil
}

// DepositURL renders a BIP-21 style payment link carrying an amount.
func (g *Gateway) DepositURL(chain ac.Chain, address ac.Address, amount decimal.Decimal) (string, error) {
	base, err := g.BuildURL(chain, address)
	if err != nil {
		return "", err
	}
	if amount.IsPositive() {
		return base + "?amount=" + amount.String(), nil
	}
	return base, nil
}

// stripURI reduces a payment link to its bare address. A bare address
// passes through unchanged.
func (g *Gateway) stripURI(chain ac.Chain, uri string) string {
	addr := uri
	if scheme, ok := g.settings.uriScheme(chain); ok {
		if rest, found := strings.CutPrefix(addr, scheme+":"); found {
			addr = rest
		}
	}
	addr = strings.TrimPrefix(addr, "//")
	if i := strings.IndexByte(addr, '?'); i >= 0 {
		addr = addr[:i]
	}
	return addr
}

// ParseURL extracts the address from a payment link and validates it
// for the network.
func (g *Gateway) ParseURL(chain ac.Chain, network ac.Network, uri string) (ac.Address, error) {
	addr := ac.Address(g.stripURI(chain, uri))
	if err := g.registry.ValidateAddress(chain, network, addr); err != nil {
		return "", err
	}
	return addr, nil
}

// Validate is the total boolean contract: every (chain, network,
// address) triple maps to true or false, never an error.
func (g *Gateway) Validate(chain ac.Chain, network ac.Network, address ac.Address) bool {
	if err := g.registry.ValidateAddress(chain, network, address); err != nil {
		logrus.WithFields(logrus.Fields{
			"chain":   chain,
			"network": network,
		}).WithError(err).Debug("address rejected")
		return false
	}
	return true
}

// GetAddressType reports which scheme variant accepted the link's
// address, or "" when none did.
func (g *Gateway) GetAddressType(chain ac.Chain, network ac.Network, uri string) string {
	name, ok := g.registry.AddressType(chain, network, ac.Address(g.stripURI(chain, uri)))
	if !ok {
		return ""
	}
	return name
}
