package zcash

import (
	"encoding/hex"
	"fmt"
	"strings"

	b32 "github.com/btcsuite/btcd/btcutil/bech32"
	ac "github.com/coinpayd/addrcheck"
	"github.com/coinpayd/addrcheck/scheme/zcash/address"
)

// Config holds the expected human-readable prefix per network. The
// shielded pools have no regtest deployment, so only main and test are
// configurable.
type Config struct {
	MainNetPrefix string
	TestNetPrefix string
}

func (cfg *Config) prefix(network ac.Network) (string, bool) {
	switch network {
	case ac.Mainnet:
		return cfg.MainNetPrefix, true
	case ac.Testnet:
		return cfg.TestNetPrefix, true
	}
	return "", false
}

// Sapling payment addresses carry an 11 byte diversifier and a 32 byte
// diversified transmission key, with no witness-version word.
const saplingSize = 43

// Unified addresses may carry several receivers; the encoding is capped
// well above the BIP-173 ceiling.
const unifiedCharLimit = 512

// The raw encoding ends with the human-readable prefix zero-padded to a
// fixed width. The width is part of the scheme and the comparison window
// is the final 16 bytes of the de-jumbled payload.
const (
	paddedPrefixHexWidth = 34
	paddingCompareHexLen = 32
)

// ValidateSaplingAddress checks a shielded Sapling address: standard
// bech32 checksum with no character ceiling, exactly 43 decoded bytes,
// and an exact prefix match for the network. Sapling addresses exceed
// the BIP-173 segwit cap, so the limit-free decoder is used and the
// checksum variant is checked explicitly.
func ValidateSaplingAddress(cfg *Config, network ac.Network, addr ac.Address) error {
	hrp, words, version, err := b32.DecodeNoLimitWithVersion(string(addr))
	if err != nil {
		return fmt.Errorf("invalid sapling address %s: %w", addr, err)
	}
	if version != b32.Version0 {
		return fmt.Errorf("invalid sapling address %s: checksum is not bech32", addr)
	}
	raw, err := b32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return fmt.Errorf("invalid sapling address %s: %w", addr, err)
	}
	if len(raw) != saplingSize {
		return fmt.Errorf("invalid sapling address %s: decoded to %d bytes, expected %d", addr, len(raw), saplingSize)
	}
	expected, ok := cfg.prefix(network)
	if !ok {
		return fmt.Errorf("invalid sapling address %s: unrecognized network %q", addr, network)
	}
	if hrp != expected {
		return fmt.Errorf("invalid sapling address %s: prefix %q does not match the %s network", addr, hrp, network)
	}
	return nil
}

// ValidateUnifiedAddress checks a unified address: bech32m checksum with
// an extended character ceiling, reversal of the jumbling transform, and
// confirmation that the de-jumbled payload ends with the network prefix
// zero-padded to the fixed width.
func ValidateUnifiedAddress(cfg *Config, network ac.Network, addr ac.Address) error {
	if len(addr) > unifiedCharLimit {
		return fmt.Errorf("invalid unified address %s: %d characters, above the %d ceiling", addr, len(addr), unifiedCharLimit)
	}
	_, words, version, err := b32.DecodeNoLimitWithVersion(string(addr))
	if err != nil {
		return fmt.Errorf("invalid unified address %s: %w", addr, err)
	}
	if version != b32.VersionM {
		return fmt.Errorf("invalid unified address %s: checksum is not bech32m", addr)
	}
	raw, err := b32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return fmt.Errorf("invalid unified address %s: %w", addr, err)
	}
	plain, err := address.Unjumble(raw)
	if err != nil {
		return fmt.Errorf("invalid unified address %s: %w", addr, err)
	}
	expected, ok := cfg.prefix(network)
	if !ok {
		return fmt.Errorf("invalid unified address %s: unrecognized network %q", addr, network)
	}
	padded := hex.EncodeToString([]byte(expected))
	if len(padded) < paddedPrefixHexWidth {
		padded += strings.Repeat("0", paddedPrefixHexWidth-len(padded))
	}
	payloadHex := hex.EncodeToString(plain)
	if len(payloadHex) < paddingCompareHexLen {
		return fmt.Errorf("invalid unified address %s: payload too short for padding", addr)
	}
	if payloadHex[len(payloadHex)-paddingCompareHexLen:] != padded[:paddingCompareHexLen] {
		return fmt.Errorf("invalid unified address %s: padding does not match the %s network", addr, network)
	}
	return nil
}

// NewSaplingValidator binds cfg into the shared validator contract.
func NewSaplingValidator(cfg *Config) ac.AddressValidator {
	return ac.AddressValidatorFunc(func(network ac.Network, a ac.Address) error {
		return ValidateSaplingAddress(cfg, network, a)
	})
}

// NewUnifiedValidator binds cfg into the shared validator contract.
func NewUnifiedValidator(cfg *Config) ac.AddressValidator {
	return ac.AddressValidatorFunc(func(network ac.Network, a ac.Address) error {
		return ValidateUnifiedAddress(cfg, network, a)
	})
}
