package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

func newWalletCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Query and spend from the daemon wallet",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "balance",
		Short: "Show confirmed and unconfirmed balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.GetWalletBalance(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rates",
		Short: "Show exchange rates for the wallet coin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.GetExchangeRate(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "address",
		Short: "Show a receiving address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.GetAddress(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	cmd.AddCommand(newSendCmd(env))
	return cmd
}

func newSendCmd(env *cliEnv) *cobra.Command {
	var (
		req        openbazaar.SpendRequest
		amountCoin float64
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send coins to an address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			satoshis := cmd.Flags().Changed("amount")
			coins := cmd.Flags().Changed("amount-coin")
			switch {
			case satoshis && coins:
				return fmt.Errorf("--amount and --amount-coin are mutually exclusive")
			case !satoshis && !coins:
				return fmt.Errorf("one of --amount or --amount-coin is required")
			case coins:
				req.Amount = openbazaar.RoundSatoshis(amountCoin)
			}
			if req.Amount <= 0 {
				return fmt.Errorf("amount must be positive, got %d satoshis", req.Amount)
			}

			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.SendMoney(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&req.Address, "address", "", "Destination address (required)")
	cmd.Flags().Int64Var(&req.Amount, "amount", 0, "Amount in satoshis")
	cmd.Flags().Float64Var(&amountCoin, "amount-coin", 0, "Amount in whole coins, rounded to satoshis")
	cmd.Flags().StringVar(&req.FeeLevel, "fee-level", "", "Fee level (ECONOMIC when empty)")
	cmd.Flags().StringVar(&req.Memo, "memo", "", "Memo stored with the transaction")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}
