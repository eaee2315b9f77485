package address

import (
	"fmt"

	"github.com/dchest/blake2b"
)

// Unified addresses interleave their concatenated receivers with a four
// round unkeyed Feistel network over personalized BLAKE2b ("jumbling",
// ZIP 316) so that no receiver can be stripped or reordered without
// breaking the outer checksum. Unjumble applies the rounds in reverse
// order and is the exact inverse of Jumble at every valid length.

const (
	jumbleMinLen = 48
	jumbleMaxLen = 4194368
)

func leftLen(n int) int {
	if n/2 < 64 {
		return n / 2
	}
	return 64
}

func personal(tag byte, i, j byte) []byte {
	p := make([]byte, blake2b.PersonSize)
	copy(p, "UA_F4Jumble_")
	p[12] = tag
	p[13] = i
	p[14] = j
	return p
}

// hRound hashes the right half down to the left half's size.
func hRound(i byte, u []byte, outLen int) []byte {
	h, err := blake2b.New(&blake2b.Config{Size: uint8(outLen), Person: personal('H', i, 0)})
	if err != nil {
		panic(err)
	}
	h.Write(u)
	return h.Sum(nil)
}

// gRound stretches the left half out to the right half's size using a
// counter in the personalization.
func gRound(i byte, u []byte, outLen int) []byte {
	out := make([]byte, 0, outLen+blake2b.Size)
	for j := 0; len(out) < outLen; j++ {
		p := personal('G', i, byte(j))
		p[15] = byte(j >> 8)
		h, err := blake2b.New(&blake2b.Config{Size: blake2b.Size, Person: p})
		if err != nil {
			panic(err)
		}
		h.Write(u)
		out = h.Sum(out)
	}
	return out[:outLen]
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func checkJumbleLen(n int) error {
	if n < jumbleMinLen || n > jumbleMaxLen {
		return fmt.Errorf("jumble input is %d bytes, must be within [%d, %d]", n, jumbleMinLen, jumbleMaxLen)
	}
	return nil
}

// Jumble applies the forward transform. msg is not modified.
func Jumble(msg []byte) ([]byte, error) {
	if err := checkJumbleLen(len(msg)); err != nil {
		return nil, err
	}
	ll := leftLen(len(msg))
	lr := len(msg) - ll
	left := append([]byte(nil), msg[:ll]...)
	right := append([]byte(nil), msg[ll:]...)

	xorInto(right, gRound(0, left, lr))
	xorInto(left, hRound(0, right, ll))
	xorInto(right, gRound(1, left, lr))
	xorInto(left, hRound(1, right, ll))
	return append(left, right...), nil
}

// Unjumble reverses Jumble, recovering the original concatenated
// receiver bytes. msg is not modified.
func Unjumble(msg []byte) ([]byte, error) {
	if err := checkJumbleLen(len(msg)); err != nil {
		return nil, err
	}
	ll := leftLen(len(msg))
	lr := len(msg) - ll
	left := append([]byte(nil), msg[:ll]...)
	right := append([]byte(nil), msg[ll:]...)

	xorInto(left, hRound(1, right, ll))
	xorInto(right, gRound(1, left, lr))
	xorInto(left, hRound(0, right, ll))
	xorInto(right, gRound(0, left, lr))
	return append(left, right...), nil
}
