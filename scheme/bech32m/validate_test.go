package bech32m_test

import (
	"testing"

	b32 "github.com/btcsuite/btcd/btcutil/bech32"
	ac "github.com/coinpayd/addrcheck"
	"github.com/coinpayd/addrcheck/scheme/bech32m"
	"github.com/stretchr/testify/require"
)

var btcConfig = &bech32m.Config{
	MainNetPrefix: "bc",
	TestNetPrefix: "tb",
	RegtestPrefix: "bcrt",
}

// encodeM builds a bech32m string with the given witness version and
// program size.
func encodeM(t *testing.T, hrp string, version byte, programSize int) ac.Address {
	t.Helper()
	program := make([]byte, programSize)
	for i := range program {
		program[i] = byte(i*13 + 5)
	}
	words, err := b32.ConvertBits(program, 8, 5, true)
	require.NoError(t, err)
	encoded, err := b32.EncodeM(hrp, append([]byte{version}, words...))
	require.NoError(t, err)
	return ac.Address(encoded)
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		network ac.Network
		address ac.Address
		valid   bool
	}{
		{
			name:    "mainnet taproot",
			network: ac.Mainnet,
			address: "bc1p5d7rjq7g6rdk2yhzks9smlaqtedr4dekq08ge8ztwac72sfr9rusxg3297",
			valid:   true,
		},
		{
			name:    "mainnet taproot on testnet",
			network: ac.Testnet,
			address: "bc1p5d7rjq7g6rdk2yhzks9smlaqtedr4dekq08ge8ztwac72sfr9rusxg3297",
			valid:   false,
		},
		{
			name:    "witness v0 uses bech32, not bech32m",
			network: ac.Mainnet,
			address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
			valid:   false,
		},
		{
			name:    "corrupted checksum",
			network: ac.Mainnet,
			address: "bc1p5d7rjq7g6rdk2yhzks9smlaqtedr4dekq08ge8ztwac72sfr9rusxg3298",
			valid:   false,
		},
		{
			name:    "unrecognized network",
			network: ac.Network("stagenet"),
			address: "bc1p5d7rjq7g6rdk2yhzks9smlaqtedr4dekq08ge8ztwac72sfr9rusxg3297",
			valid:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bech32m.ValidateAddress(btcConfig, tt.network, tt.address)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestWitnessVersionRange(t *testing.T) {
	// Versions 1 through 16 are valid, anything else is not.
	require.NoError(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 1, 32)))
	require.NoError(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 16, 32)))
	require.Error(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 0, 32)))
	require.Error(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 17, 32)))
	require.Error(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 31, 32)))
}

func TestProgramLengthRange(t *testing.T) {
	require.NoError(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 1, 2)))
	require.NoError(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 1, 40)))
	require.Error(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 1, 1)))
	require.Error(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, encodeM(t, "bc", 1, 41)))
}

func TestRegtestPrefix(t *testing.T) {
	addr := encodeM(t, "bcrt", 1, 32)
	require.NoError(t, bech32m.ValidateAddress(btcConfig, ac.Regtest, addr))
	require.Error(t, bech32m.ValidateAddress(btcConfig, ac.Mainnet, addr))
}
