package base58check

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	ac "github.com/coinpayd/addrcheck"
)

// Config describes a Base58Check address family. Each network carries a
// set of acceptable byte-sequence prefixes; an alternative may span
// several bytes (e.g. Zcash transparent addresses use two-byte prefixes)
// and matching any one alternative is enough.
type Config struct {
	// Expected length of the decoded payload, version byte included,
	// 4-byte checksum excluded.
	DecodedLength int
	MainNetPrefix [][]byte
	TestNetPrefix [][]byte
	RegtestPrefix [][]byte
}

func (cfg *Config) prefixes(network ac.Network) ([][]byte, bool) {
	switch network {
	case ac.Mainnet:
		return cfg.MainNetPrefix, true
	case ac.Testnet:
		return cfg.TestNetPrefix, true
	case ac.Regtest:
		return cfg.RegtestPrefix, true
	}
	return nil, false
}

// ValidateAddress checks that addr decodes under Base58Check with a valid
// checksum, that the decoded payload has the configured length, and that
// it starts with one of the network's prefix alternatives.
func ValidateAddress(cfg *Config, network ac.Network, addr ac.Address) error {
	payload, version, err := base58.CheckDecode(string(addr))
	if err != nil {
		return fmt.Errorf("invalid base58check address %s: %w", addr, err)
	}
	// CheckDecode splits off the leading version byte; the prefix tables
	// are expressed over the full decoded payload, so stitch it back on.
	decoded := make([]byte, 0, len(payload)+1)
	decoded = append(decoded, version)
	decoded = append(decoded, payload...)

	if len(decoded) != cfg.DecodedLength {
		return fmt.Errorf("invalid base58check address %s: decoded to %d bytes, expected %d", addr, len(decoded), cfg.DecodedLength)
	}
	prefixes, ok := cfg.prefixes(network)
	if !ok {
		return fmt.Errorf("invalid base58check address %s: unrecognized network %q", addr, network)
	}
	for _, prefix := range prefixes {
		if len(prefix) > 0 && bytes.HasPrefix(decoded, prefix) {
			return nil
		}
	}
	return fmt.Errorf("invalid base58check address %s: prefix does not match the %s network", addr, network)
}

// NewValidator binds cfg into the shared validator contract.
func NewValidator(cfg *Config) ac.AddressValidator {
	return ac.AddressValidatorFunc(func(network ac.Network, address ac.Address) error {
		return ValidateAddress(cfg, network, address)
	})
}
