package monero

import (
	"encoding/hex"
	"fmt"
	"strings"

	ac "github.com/coinpayd/addrcheck"
	"github.com/coinpayd/addrcheck/scheme/monero/address"
	"golang.org/x/crypto/sha3"
)

// Config carries the payload hex prefix expected for each Monero address
// class. The network byte is a varint at the front of the payload, so
// prefixes are expressed as lowercase hex strings (e.g. "12" for a
// mainnet public address). Monero has no regtest deployment.
type Config struct {
	MainNetPublicAddrPrefix     string
	MainNetIntegratedAddrPrefix string
	MainNetSubAddrPrefix        string
	TestNetPublicAddrPrefix     string
	TestNetIntegratedAddrPrefix string
	TestNetSubAddrPrefix        string
}

func (cfg *Config) prefixes(network ac.Network) ([]string, bool) {
	switch network {
	case ac.Mainnet:
		return []string{
			cfg.MainNetPublicAddrPrefix,
			cfg.MainNetIntegratedAddrPrefix,
			cfg.MainNetSubAddrPrefix,
		}, true
	case ac.Testnet:
		return []string{
			cfg.TestNetPublicAddrPrefix,
			cfg.TestNetIntegratedAddrPrefix,
			cfg.TestNetSubAddrPrefix,
		}, true
	}
	return nil, false
}

// The last 4 decoded bytes hold the Keccak-256 checksum of the payload.
const checksumHexLen = 8

// ValidateAddress checks addr against cfg for the given network: Monero
// base58 decode, Keccak-256 checksum over the payload, and membership of
// the payload prefix in the network's public/integrated/subaddress set.
func ValidateAddress(cfg *Config, network ac.Network, addr ac.Address) error {
	decoded, err := address.DecodeHex(string(addr))
	if err != nil {
		return fmt.Errorf("invalid monero address %s: %w", addr, err)
	}
	return validateDecodedHex(cfg, network, addr, decoded)
}

func validateDecodedHex(cfg *Config, network ac.Network, addr ac.Address, decoded string) error {
	if len(decoded) <= checksumHexLen {
		return fmt.Errorf("invalid monero address %s: too short to carry a checksum", addr)
	}
	payloadHex := decoded[:len(decoded)-checksumHexLen]
	checksumHex := decoded[len(decoded)-checksumHexLen:]
	if len(payloadHex)%2 != 0 {
		return fmt.Errorf("invalid monero address %s: payload hex has odd length %d", addr, len(payloadHex))
	}
	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return fmt.Errorf("invalid monero address %s: %w", addr, err)
	}

	prefixes, ok := cfg.prefixes(network)
	if !ok {
		return fmt.Errorf("invalid monero address %s: unrecognized network %q", addr, network)
	}
	matched := false
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(payloadHex, prefix) {
			matched = true
			break
		}
	}
	if !matched {
		return fmt.Errorf("invalid monero address %s: prefix does not match the %s network", addr, network)
	}

	keccak := sha3.NewLegacyKeccak256()
	keccak.Write(payload)
	sum := keccak.Sum(nil)
	if hex.EncodeToString(sum[:checksumHexLen/2]) != checksumHex {
		return fmt.Errorf("invalid monero address %s: checksum mismatch", addr)
	}
	return nil
}

// NewValidator binds cfg into the shared validator contract.
func NewValidator(cfg *Config) ac.AddressValidator {
	return ac.AddressValidatorFunc(func(network ac.Network, a ac.Address) error {
		return ValidateAddress(cfg, network, a)
	})
}
