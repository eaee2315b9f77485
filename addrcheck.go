package addrcheck

// Network selects which per-network entry of a scheme configuration is
// active. It is a closed set: every validator rejects anything else.
type Network string

const (
	Mainnet = Network("main")
	Testnet = Network("test")
	Regtest = Network("regtest")
)

// Address is a candidate deposit address under test. It is untrusted
// input and is never mutated.
type Address string

// Chain identifies a supported blockchain (or payment-request family)
// in the built-in registry.
type Chain string

// List of built-in chains
const (
	BTC  = Chain("BTC")  // Bitcoin
	LTC  = Chain("LTC")  // Litecoin
	DOGE = Chain("DOGE") // Dogecoin
	DASH = Chain("DASH") // Dash
	ZEC  = Chain("ZEC")  // Zcash
	XMR  = Chain("XMR")  // Monero
	LN   = Chain("LN")   // Lightning payment requests
)

var ChainList = []Chain{
	BTC,
	LTC,
	DOGE,
	DASH,
	ZEC,
	XMR,
	LN,
}
