package factory

import (
	"github.com/btcsuite/btcd/chaincfg"
	ac "github.com/coinpayd/addrcheck"
	"github.com/coinpayd/addrcheck/scheme/base58check"
	"github.com/coinpayd/addrcheck/scheme/bech32"
	"github.com/coinpayd/addrcheck/scheme/bech32m"
	"github.com/coinpayd/addrcheck/scheme/monero"
	"github.com/coinpayd/addrcheck/scheme/zcash"
)

// DefaultInvoiceCharLimit caps accepted BOLT11 payment requests. They
// routinely exceed the 90 character on-chain cap.
const DefaultInvoiceCharLimit = 1024

// Bitcoin prefix bytes and segwit prefixes come straight from btcd's
// chain parameters. The other bitcoin-family chains are not registered
// with btcd, so their magics are spelled out below.
var btcBase58Check = &base58check.Config{
	DecodedLength: 21,
	MainNetPrefix: [][]byte{
		{chaincfg.MainNetParams.PubKeyHashAddrID},
		{chaincfg.MainNetParams.ScriptHashAddrID},
	},
	TestNetPrefix: [][]byte{
		{chaincfg.TestNet3Params.PubKeyHashAddrID},
		{chaincfg.TestNet3Params.ScriptHashAddrID},
	},
	RegtestPrefix: [][]byte{
		{chaincfg.RegressionNetParams.PubKeyHashAddrID},
		{chaincfg.RegressionNetParams.ScriptHashAddrID},
	},
}

var btcSegwit = &bech32.Config{
	MainNetPrefix: chaincfg.MainNetParams.Bech32HRPSegwit,
	TestNetPrefix: chaincfg.TestNet3Params.Bech32HRPSegwit,
	RegtestPrefix: chaincfg.RegressionNetParams.Bech32HRPSegwit,
}

var btcTaproot = &bech32m.Config{
	MainNetPrefix: chaincfg.MainNetParams.Bech32HRPSegwit,
	TestNetPrefix: chaincfg.TestNet3Params.Bech32HRPSegwit,
	RegtestPrefix: chaincfg.RegressionNetParams.Bech32HRPSegwit,
}

var ltcBase58Check = &base58check.Config{
	DecodedLength: 21,
	MainNetPrefix: [][]byte{{48}, {50}},
	TestNetPrefix: [][]byte{{111}, {58}},
	RegtestPrefix: [][]byte{{111}, {58}},
}

var ltcSegwit = &bech32.Config{
	MainNetPrefix: "ltc",
	TestNetPrefix: "tltc",
	RegtestPrefix: "rltc",
}

var dogeBase58Check = &base58check.Config{
	DecodedLength: 21,
	MainNetPrefix: [][]byte{{30}, {22}},
	TestNetPrefix: [][]byte{{113}, {196}},
	RegtestPrefix: [][]byte{{111}, {196}},
}

var dashBase58Check = &base58check.Config{
	DecodedLength: 21,
	MainNetPrefix: [][]byte{{76}, {16}},
	TestNetPrefix: [][]byte{{140}, {19}},
	RegtestPrefix: [][]byte{{140}, {19}},
}

// Zcash transparent addresses use two-byte prefixes (t1/t3 on mainnet,
// tm/t2 on testnet); regtest shares the testnet magics.
var zecBase58Check = &base58check.Config{
	DecodedLength: 22,
	MainNetPrefix: [][]byte{{0x1c, 0xb8}, {0x1c, 0xbd}},
	TestNetPrefix: [][]byte{{0x1d, 0x25}, {0x1c, 0xba}},
	RegtestPrefix: [][]byte{{0x1d, 0x25}, {0x1c, 0xba}},
}

var zecSapling = &zcash.Config{
	MainNetPrefix: "zs",
	TestNetPrefix: "ztestsapling",
}

var zecUnified = &zcash.Config{
	MainNetPrefix: "u",
	TestNetPrefix: "utest",
}

// Monero network bytes as payload hex: public, integrated and subaddress
// for mainnet (0x12, 0x13, 0x2a) and testnet (0x35, 0x36, 0x3f).
var xmrConfig = &monero.Config{
	MainNetPublicAddrPrefix:     "12",
	MainNetIntegratedAddrPrefix: "13",
	MainNetSubAddrPrefix:        "2a",
	TestNetPublicAddrPrefix:     "35",
	TestNetIntegratedAddrPrefix: "36",
	TestNetSubAddrPrefix:        "3f",
}

var lnInvoice = &bech32.Config{
	MainNetPrefix: "lnbc",
	TestNetPrefix: "lntb",
}

// NewDefaultRegistry builds the registry of built-in chains. Callers may
// register additional chains or replace entries on the returned value.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ac.BTC,
		Scheme{SchemeBase58Check, base58check.NewValidator(btcBase58Check)},
		Scheme{SchemeBech32, bech32.NewValidator(btcSegwit)},
		Scheme{SchemeBech32m, bech32m.NewValidator(btcTaproot)},
	)
	r.Register(ac.LTC,
		Scheme{SchemeBase58Check, base58check.NewValidator(ltcBase58Check)},
		Scheme{SchemeBech32, bech32.NewValidator(ltcSegwit)},
	)
	r.Register(ac.DOGE,
		Scheme{SchemeBase58Check, base58check.NewValidator(dogeBase58Check)},
	)
	r.Register(ac.DASH,
		Scheme{SchemeBase58Check, base58check.NewValidator(dashBase58Check)},
	)
	r.Register(ac.ZEC,
		Scheme{SchemeBase58Check, base58check.NewValidator(zecBase58Check)},
		Scheme{SchemeSapling, zcash.NewSaplingValidator(zecSapling)},
		Scheme{SchemeUnified, zcash.NewUnifiedValidator(zecUnified)},
	)
	r.Register(ac.XMR,
		Scheme{SchemeMonero, monero.NewValidator(xmrConfig)},
	)
	r.Register(ac.LN,
		Scheme{SchemeInvoice, bech32.NewInvoiceValidator(lnInvoice, DefaultInvoiceCharLimit)},
	)
	return r
}
