package addrcheck

import "fmt"

// AddressValidator is the contract every encoding scheme implements once
// bound to its configuration. A nil error means the address decoded under
// the scheme's exact grammar, every structural constraint held, any
// embedded checksum matched, and the network prefix matched exactly. A
// non-nil error carries the rejection reason for diagnostics only; it
// never affects the accept/reject outcome and implementations never
// panic, not even on adversarial input.
type AddressValidator interface {
	ValidateAddress(network Network, address Address) error
}

// AddressValidatorFunc adapts a plain function to AddressValidator.
type AddressValidatorFunc func(network Network, address Address) error

func (f AddressValidatorFunc) ValidateAddress(network Network, address Address) error {
	return f(network, address)
}

// Valid reduces a validator verdict to the total boolean contract.
func Valid(v AddressValidator, network Network, address Address) bool {
	return v.ValidateAddress(network, address) == nil
}

// AnyOf combines validators for chains with several address generations
// (e.g. legacy, segwit, taproot). The address is accepted if any one
// validator accepts it; otherwise the last rejection is reported.
func AnyOf(validators ...AddressValidator) AddressValidator {
	return anyOf(validators)
}

type anyOf []AddressValidator

func (vs anyOf) ValidateAddress(network Network, address Address) error {
	err := fmt.Errorf("invalid address %s: no validators configured", address)
	for _, v := range vs {
		if err = v.ValidateAddress(network, address); err == nil {
			return nil
		}
	}
	return err
}
