package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// Monero's Base58 variant is block-wise: every 8 byte block encodes to
// exactly 11 characters instead of treating the whole payload as one big
// integer, so addresses have a fixed length. A shorter final block is
// allowed; its decoded size is determined by its encoded length.

const (
	fullBlockEncodedSize = 11
	fullBlockSize        = 8
)

// Decoded byte count for each encoded block length; -1 marks lengths that
// no block can produce.
var decodedBlockSizes = [fullBlockEncodedSize + 1]int{
	0, -1, 1, 2, -1, 3, 4, 5, -1, 6, 7, 8,
}

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var alphabetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		rev[alphabet[i]] = int8(i)
	}
	return rev
}()

var base58Radix = big.NewInt(58)

func decodeBlock(block string, size int) ([]byte, error) {
	num := new(big.Int)
	for i := 0; i < len(block); i++ {
		c := block[i]
		if c >= 128 || alphabetRev[c] < 0 {
			return nil, fmt.Errorf("invalid base58 character %q", c)
		}
		num.Mul(num, base58Radix)
		num.Add(num, big.NewInt(int64(alphabetRev[c])))
	}
	raw := num.Bytes()
	if len(raw) > size {
		return nil, fmt.Errorf("block value needs %d bytes, at most %d allowed", len(raw), size)
	}
	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out, nil
}

// Decode decodes a Monero base58 string to raw bytes.
func Decode(encoded string) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, errors.New("empty string")
	}
	fullBlocks := len(encoded) / fullBlockEncodedSize
	tailEncoded := len(encoded) % fullBlockEncodedSize
	tailSize := decodedBlockSizes[tailEncoded]
	if tailSize < 0 {
		return nil, fmt.Errorf("invalid encoded length %d", len(encoded))
	}
	out := make([]byte, 0, fullBlocks*fullBlockSize+tailSize)
	for i := 0; i < fullBlocks; i++ {
		block, err := decodeBlock(encoded[i*fullBlockEncodedSize:(i+1)*fullBlockEncodedSize], fullBlockSize)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	if tailEncoded > 0 {
		block, err := decodeBlock(encoded[fullBlocks*fullBlockEncodedSize:], tailSize)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	return out, nil
}

// DecodeHex decodes a Monero base58 string to lowercase hex.
func DecodeHex(encoded string) (string, error) {
	raw, err := Decode(encoded)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
