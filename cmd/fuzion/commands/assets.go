package commands

import (
	"github.com/spf13/cobra"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/lcd"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
)

func assetsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Assets known to the utilities contract",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "trusted",
		Short: "List the curated assets, sorted by symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils, _, err := s.utilities(cmd.Context())
			if err != nil {
				return err
			}
			assets, err := token.TrustedAssets(cmd.Context(), utils, nil)
			if err != nil {
				return err
			}
			return printJSON(cmd, assets)
		},
	})
	return cmd
}

func balancesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "balances <address>",
		Short: "Show the trusted token balances of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utils, config, err := s.utilities(cmd.Context())
			if err != nil {
				return err
			}
			rest, err := lcd.NewClient(lcd.Config{BaseURL: config.ChainLCDURL, HTTPClient: s.env.HTTPClient})
			if err != nil {
				return err
			}
			balances, err := token.WalletBalances(cmd.Context(), rest, utils, nil, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, balances)
		},
	}
}
