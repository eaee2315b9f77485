package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	ac "github.com/coinpayd/addrcheck"
	"github.com/coinpayd/addrcheck/config"
	"github.com/coinpayd/addrcheck/factory"
	"github.com/coinpayd/addrcheck/gateway"
)

type cliArgs struct {
	chain   string
	network string
}

func (a *cliArgs) Chain() ac.Chain     { return ac.Chain(a.chain) }
func (a *cliArgs) Network() ac.Network { return ac.Network(a.network) }

func newGateway() (*gateway.Gateway, error) {
	settings, err := gateway.LoadSettings()
	if err != nil {
		return nil, err
	}
	return gateway.New(factory.NewDefaultRegistry(), settings), nil
}

func CmdAddrcheck() *cobra.Command {
	args := &cliArgs{}
	cmd := &cobra.Command{
		Use:          "addrcheck",
		Short:        "Validate deposit addresses and payment links",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			config.ConfigureLogger()
		},
	}
	cmd.PersistentFlags().StringVar(&args.chain, "chain", string(ac.BTC), "chain symbol (BTC, LTC, DOGE, DASH, ZEC, XMR, LN)")
	cmd.PersistentFlags().StringVar(&args.network, "network", string(ac.Mainnet), "network tag (main, test, regtest)")

	cmd.AddCommand(cmdValidate(args))
	cmd.AddCommand(cmdDepositURL(args))
	cmd.AddCommand(cmdParseURL(args))
	cmd.AddCommand(cmdAddressType(args))
	return cmd
}

func cmdValidate(args *cliArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address>",
		Short: "Check whether an address is a valid deposit destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			g, err := newGateway()
			if err != nil {
				return err
			}
			if !g.Validate(args.Chain(), args.Network(), ac.Address(posArgs[0])) {
				return fmt.Errorf("invalid %s address for the %s network", args.chain, args.network)
			}
			fmt.Println("valid")
			return nil
		},
	}
}

func cmdDepositURL(args *cliArgs) *cobra.Command {
	var amount string
	cmd := &cobra.Command{
		Use:   "deposit-url <address>",
		Short: "Render a payment link for a validated address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			g, err := newGateway()
			if err != nil {
				return err
			}
			addr := ac.Address(posArgs[0])
			if !g.Validate(args.Chain(), args.Network(), addr) {
				return fmt.Errorf("invalid %s address for the %s network", args.chain, args.network)
			}
			value := decimal.Zero
			if amount != "" {
				value, err = decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", amount, err)
				}
			}
			url, err := g.DepositURL(args.Chain(), addr, value)
			if err != nil {
				return err
			}
			fmt.Println(url)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount to request, in whole coins")
	return cmd
}

func cmdParseURL(args *cliArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-url <uri>",
		Short: "Extract and validate the address inside a payment link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			g, err := newGateway()
			if err != nil {
				return err
			}
			addr, err := g.ParseURL(args.Chain(), args.Network(), posArgs[0])
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}
}

func cmdAddressType(args *cliArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "address-type <uri>",
		Short: "Report which encoding scheme accepted the link's address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			g, err := newGateway()
			if err != nil {
				return err
			}
			name := g.GetAddressType(args.Chain(), args.Network(), posArgs[0])
			if name == "" {
				return fmt.Errorf("no %s scheme accepted the address", args.chain)
			}
			fmt.Println(name)
			return nil
		},
	}
}

func main() {
	if err := CmdAddrcheck().Execute(); err != nil {
		os.Exit(1)
	}
}
