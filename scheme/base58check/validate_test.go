package base58check_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	ac "github.com/coinpayd/addrcheck"
	"github.com/coinpayd/addrcheck/scheme/base58check"
	"github.com/stretchr/testify/require"
)

var btcConfig = &base58check.Config{
	DecodedLength: 21,
	MainNetPrefix: [][]byte{{0x00}, {0x05}},
	TestNetPrefix: [][]byte{{0x6f}, {0xc4}},
	RegtestPrefix: [][]byte{{0x6f}, {0xc4}},
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		network ac.Network
		address ac.Address
		valid   bool
	}{
		{
			name:    "mainnet P2PKH",
			network: ac.Mainnet,
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			valid:   true,
		},
		{
			name:    "mainnet P2SH",
			network: ac.Mainnet,
			address: "3Ai1JZ8pdJb2ksieUV8FsxSNVJCpoPi8W6",
			valid:   true,
		},
		{
			name:    "testnet P2PKH",
			network: ac.Testnet,
			address: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
			valid:   true,
		},
		{
			name:    "testnet P2SH",
			network: ac.Testnet,
			address: "2MzQwSSnBHWHqSAqtTVQ6v47XtaisrJa1Vc",
			valid:   true,
		},
		{
			name:    "regtest accepts testnet magic",
			network: ac.Regtest,
			address: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
			valid:   true,
		},
		{
			name:    "mainnet address on testnet",
			network: ac.Testnet,
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			valid:   false,
		},
		{
			name:    "testnet address on mainnet",
			network: ac.Mainnet,
			address: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
			valid:   false,
		},
		{
			name:    "corrupted checksum",
			network: ac.Mainnet,
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb",
			valid:   false,
		},
		{
			name:    "invalid alphabet",
			network: ac.Mainnet,
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7Divf0a",
			valid:   false,
		},
		{
			name:    "unrecognized network",
			network: ac.Network("stagenet"),
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			valid:   false,
		},
		{
			name:    "empty string",
			network: ac.Mainnet,
			address: "",
			valid:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := base58check.ValidateAddress(btcConfig, tt.network, tt.address)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestPrefixTable(t *testing.T) {
	// 21 byte decode with a 0x41 version byte.
	payload := bytes.Repeat([]byte{0x07}, 20)
	addr := ac.Address(base58.CheckEncode(payload, 0x41))

	cfg := &base58check.Config{
		DecodedLength: 21,
		MainNetPrefix: [][]byte{{0x41}},
		TestNetPrefix: [][]byte{{0x6f}},
	}
	require.NoError(t, base58check.ValidateAddress(cfg, ac.Mainnet, addr))
	require.Error(t, base58check.ValidateAddress(cfg, ac.Testnet, addr))

	// A mismatched first alternative must not abort the whole set.
	cfg.MainNetPrefix = [][]byte{{0x42}, {0x41, 0x07}}
	require.NoError(t, base58check.ValidateAddress(cfg, ac.Mainnet, addr))

	// Alternative longer than its match.
	cfg.MainNetPrefix = [][]byte{{0x41, 0x08}}
	require.Error(t, base58check.ValidateAddress(cfg, ac.Mainnet, addr))

	// Wrong configured length.
	cfg.MainNetPrefix = [][]byte{{0x41}}
	cfg.DecodedLength = 22
	require.Error(t, base58check.ValidateAddress(cfg, ac.Mainnet, addr))
}

func TestMultiBytePrefixes(t *testing.T) {
	// Two-byte prefixes in the style of Zcash transparent addresses.
	payload := bytes.Repeat([]byte{0x33}, 20)
	payload = append([]byte{0xb8}, payload...)
	addr := ac.Address(base58.CheckEncode(payload, 0x1c))

	cfg := &base58check.Config{
		DecodedLength: 22,
		MainNetPrefix: [][]byte{{0x05}, {0x0c, 0x1e}, {0x1c, 0xb8}},
	}
	require.NoError(t, base58check.ValidateAddress(cfg, ac.Mainnet, addr))

	cfg.MainNetPrefix = [][]byte{{0x1c, 0xbd}}
	require.Error(t, base58check.ValidateAddress(cfg, ac.Mainnet, addr))
}

func TestIdempotent(t *testing.T) {
	addr := ac.Address("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	first := base58check.ValidateAddress(btcConfig, ac.Mainnet, addr)
	second := base58check.ValidateAddress(btcConfig, ac.Mainnet, addr)
	require.Equal(t, first == nil, second == nil)
	require.NoError(t, first)
}
