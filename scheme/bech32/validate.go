package bech32

import (
	"fmt"
	"strings"

	b32 "github.com/btcsuite/btcd/btcutil/bech32"
	ac "github.com/coinpayd/addrcheck"
)

// Config holds the bech32 human-readable prefix expected on each network.
type Config struct {
	MainNetPrefix string
	TestNetPrefix string
	RegtestPrefix string
}

func (cfg *Config) prefix(network ac.Network) (string, bool) {
	switch network {
	case ac.Mainnet:
		return cfg.MainNetPrefix, true
	case ac.Testnet:
		return cfg.TestNetPrefix, true
	case ac.Regtest:
		return cfg.RegtestPrefix, true
	}
	return "", false
}

// ValidateAddress checks a segwit v0 address: BIP-173 checksum, witness
// version 0, a 20 or 32 byte witness program, and an exact match of the
// human-readable part against the network's configured prefix.
func ValidateAddress(cfg *Config, network ac.Network, addr ac.Address) error {
	hrp, words, version, err := b32.DecodeGeneric(string(addr))
	if err != nil {
		return fmt.Errorf("invalid bech32 address %s: %w", addr, err)
	}
	if version != b32.Version0 {
		return fmt.Errorf("invalid bech32 address %s: checksum is not bech32", addr)
	}
	if len(words) < 1 {
		return fmt.Errorf("invalid bech32 address %s: missing witness version", addr)
	}
	if words[0] != 0 {
		return fmt.Errorf("invalid bech32 address %s: witness version %d, expected 0", addr, words[0])
	}
	program, err := b32.ConvertBits(words[1:], 5, 8, false)
	if err != nil {
		return fmt.Errorf("invalid bech32 address %s: %w", addr, err)
	}
	if len(program) != 20 && len(program) != 32 {
		return fmt.Errorf("invalid bech32 address %s: witness program is %d bytes, expected 20 or 32", addr, len(program))
	}
	expected, ok := cfg.prefix(network)
	if !ok {
		return fmt.Errorf("invalid bech32 address %s: unrecognized network %q", addr, network)
	}
	if hrp != expected {
		return fmt.Errorf("invalid bech32 address %s: prefix %q does not match the %s network", addr, hrp, network)
	}
	return nil
}

// ValidateInvoice checks an invoice-style bech32 identifier, for example
// a BOLT11 payment request. Invoices are not segwit programs, so only the
// checksum and the literal network prefix are checked; limit caps the
// accepted character length, which routinely exceeds the 90 character
// on-chain cap. Invoices always carry the original bech32 checksum, so a
// bech32m-checksummed string is rejected.
func ValidateInvoice(cfg *Config, network ac.Network, addr ac.Address, limit int) error {
	if len(addr) > limit {
		return fmt.Errorf("invalid invoice %s: longer than %d characters", addr, limit)
	}
	_, _, version, err := b32.DecodeNoLimitWithVersion(string(addr))
	if err != nil {
		return fmt.Errorf("invalid invoice %s: %w", addr, err)
	}
	if version != b32.Version0 {
		return fmt.Errorf("invalid invoice %s: checksum is not bech32", addr)
	}
	expected, ok := cfg.prefix(network)
	if !ok || expected == "" {
		return fmt.Errorf("invalid invoice %s: no prefix configured for network %q", addr, network)
	}
	if !strings.HasPrefix(strings.ToLower(string(addr)), expected) {
		return fmt.Errorf("invalid invoice %s: prefix does not match the %s network", addr, network)
	}
	return nil
}

// ValidateInvoiceAnyNetwork accepts an invoice that validates under
// either the main or the test network configuration.
func ValidateInvoiceAnyNetwork(cfg *Config, addr ac.Address, limit int) error {
	if err := ValidateInvoice(cfg, ac.Mainnet, addr, limit); err == nil {
		return nil
	}
	return ValidateInvoice(cfg, ac.Testnet, addr, limit)
}

// NewValidator binds cfg into the shared validator contract (segwit mode).
func NewValidator(cfg *Config) ac.AddressValidator {
	return ac.AddressValidatorFunc(func(network ac.Network, address ac.Address) error {
		return ValidateAddress(cfg, network, address)
	})
}

// NewInvoiceValidator binds cfg into the shared validator contract in
// invoice mode with the given character limit.
func NewInvoiceValidator(cfg *Config, limit int) ac.AddressValidator {
	return ac.AddressValidatorFunc(func(network ac.Network, address ac.Address) error {
		return ValidateInvoice(cfg, network, address, limit)
	})
}
