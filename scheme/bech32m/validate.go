package bech32m

import (
	"fmt"

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

// ValidateAddress checks a segwit v1+ (taproot and later) address:
// BIP-350 checksum, witness version between 1 and 16 (version 0 programs
// must use bech32, never bech32m), a 2 to 40 byte witness program, and an
// exact match of the human-readable part against the network's prefix.
func ValidateAddress(cfg *Config, network ac.Network, addr ac.Address) error {
	hrp, words, version, err := b32.DecodeGeneric(string(addr))
	if err != nil {
		return fmt.Errorf("invalid bech32m address %s: %w", addr, err)
	}
	if version != b32.VersionM {
		return fmt.Errorf("invalid bech32m address %s: checksum is not bech32m", addr)
	}
	if len(words) < 1 {
		return fmt.Errorf("invalid bech32m address %s: missing witness version", addr)
	}
	if words[0] < 1 || words[0] > 16 {
		return fmt.Errorf("invalid bech32m address %s: witness version %d out of range [1, 16]", addr, words[0])
	}
	program, err := b32.ConvertBits(words[1:], 5, 8, false)
	if err != nil {
		return fmt.Errorf("invalid bech32m address %s: %w", addr, err)
	}
	if len(program) < 2 || len(program) > 40 {
		return fmt.Errorf("invalid bech32m address %s: witness program is %d bytes, expected 2 to 40", addr, len(program))
	}
	expected, ok := cfg.prefix(network)
	if !ok {
		return fmt.Errorf("invalid bech32m address %s: unrecognized network %q", addr, network)
	}
	if hrp != expected {
		return fmt.Errorf("invalid bech32m address %s: prefix %q does not match the %s network", addr, hrp, network)
	}
	return nil
}

// NewValidator binds cfg into the shared validator contract.
func NewValidator(cfg *Config) ac.AddressValidator {
	return ac.AddressValidatorFunc(func(network ac.Network, address ac.Address) error {
		return ValidateAddress(cfg, network, address)
	})
}
