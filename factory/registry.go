package factory

import (
	"fmt"

	ac "github.com/coinpayd/addrcheck"
)

// Scheme is a named validator variant registered for a chain, so that
// callers can report which address generation matched a candidate.
type Scheme struct {
	Name      string
	Validator ac.AddressValidator
}

// Scheme names used by the built-in registry.
const (
	SchemeBase58Check = "base58check"
	SchemeBech32      = "bech32"
	SchemeBech32m     = "bech32m"
	SchemeSapling     = "sapling"
	SchemeUnified     = "unified"
	SchemeMonero      = "monero"
	SchemeInvoice     = "invoice"
)

// Registry maps chain symbols to their scheme variants. Dispatch is
// tagged: the closed set of encodings lives here, and a chain with
// several address generations simply registers several variants.
type Registry struct {
	schemes map[ac.Chain][]Scheme
}

func NewRegistry() *Registry {
	return &Registry{schemes: map[ac.Chain][]Scheme{}}
}

// Register appends scheme variants for a chain. Later registrations are
// tried after earlier ones.
func (r *Registry) Register(chain ac.Chain, schemes ...Scheme) {
	r.schemes[chain] = append(r.schemes[chain], schemes...)
}

// Schemes returns the registered variants for a chain.
func (r *Registry) Schemes(chain ac.Chain) []Scheme {
	return r.schemes[chain]
}

// Validator returns the combined validator for a chain, accepting an
// address that any registered variant accepts.
func (r *Registry) Validator(chain ac.Chain) (ac.AddressValidator, bool) {
	schemes, ok := r.schemes[chain]
	if !ok || len(schemes) == 0 {
		return nil, false
	}
	validators := make([]ac.AddressValidator, 0, len(schemes))
	for _, s := range schemes {
		validators = append(validators, s.Validator)
	}
	return ac.AnyOf(validators...), true
}

// ValidateAddress dispatches to the chain's registered validators.
func (r *Registry) ValidateAddress(chain ac.Chain, network ac.Network, address ac.Address) error {
	v, ok := r.Validator(chain)
	if !ok {
		return fmt.Errorf("no validators registered for chain %s", chain)
	}
	return v.ValidateAddress(network, address)
}

// AddressType reports the name of the first scheme variant that accepts
// the address, or false if none does.
func (r *Registry) AddressType(chain ac.Chain, network ac.Network, address ac.Address) (string, bool) {
	for _, s := range r.schemes[chain] {
		if s.Validator.ValidateAddress(network, address) == nil {
			return s.Name, true
		}
	}
	return "", false
}
