package commands

import (
	"github.com/spf13/cobra"
)

func configCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Fuzion chain configs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every chain config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := s.chainConfigs(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, configs)
		},
	})
	return cmd
}

func chainCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <name>",
		Short: "Show a chain registered in the utilities contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utils, _, err := s.utilities(cmd.Context())
			if err != nil {
				return err
			}
			chain, err := utils.QueryChain(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, chain)
		},
	}
}
