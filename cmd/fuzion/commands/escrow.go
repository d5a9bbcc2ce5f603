package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/otc"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/paging"
)

func escrowCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "OTC escrows",
	}
	cmd.AddCommand(escrowGetCmd(s), escrowListCmd(s))
	return cmd
}

func escrowGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one escrow with enriched balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid escrow id %q", args[0])
			}
			client, err := s.otc(cmd.Context())
			if err != nil {
				return err
			}
			escrow, err := client.QueryMarketEscrow(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, escrow)
		},
	}
}

func escrowListCmd(s *session) *cobra.Command {
	var (
		startAfter     uint64
		limit          uint32
		ascending      bool
		includeExpired bool
		rich           bool
		creator        string
		recipient      string
		pair           string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of escrows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := otc.ListOptions{Limit: limit, IncludeExpired: includeExpired}
			if startAfter > 0 {
				options.StartAfter = paging.Key(startAfter)
			}
			if cmd.Flags().Changed("asc") {
				options.SortAsc = &ascending
			}

			client, err := s.otc(cmd.Context())
			if err != nil {
				return err
			}

			var page paging.Result[[]otc.EscrowDetails]
			switch {
			case creator != "":
				page, err = client.QueryCreatorEscrowList(cmd.Context(), creator, options)
			case recipient != "":
				page, err = client.QueryRecipientEscrowList(cmd.Context(), recipient, options)
			case pair != "":
				denoms, parseErr := parsePair(pair)
				if parseErr != nil {
					return parseErr
				}
				page, err = client.QueryPairsList(cmd.Context(), denoms, options)
			default:
				page, err = client.QueryMarketEscrowList(cmd.Context(), options)
			}
			if err != nil {
				return err
			}

			if !rich {
				return printJSON(cmd, page)
			}
			enriched, err := client.EnrichEscrows(cmd.Context(), page.Data)
			if err != nil {
				return err
			}
			return printJSON(cmd, paging.Result[[]otc.RichEscrowDetails]{Data: enriched, Pagination: page.Pagination})
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&startAfter, "start-after", 0, "escrow id to start after")
	flags.Uint32Var(&limit, "limit", otc.DefaultListLimit, "page size")
	flags.BoolVar(&ascending, "asc", false, "sort by ascending id")
	flags.BoolVar(&includeExpired, "include-expired", false, "include expired escrows")
	flags.BoolVar(&rich, "rich", false, "enrich balances with trusted asset details")
	flags.StringVar(&creator, "creator", "", "list escrows created by this address")
	flags.StringVar(&recipient, "recipient", "", "list escrows addressed to this recipient")
	flags.StringVar(&pair, "pair", "", "list escrows for a pair, as denom1,denom2")
	cmd.MarkFlagsMutuallyExclusive("creator", "recipient", "pair")
	return cmd
}

func pairsCmd(s *session) *cobra.Command {
	var includeExpired bool
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Count escrows per denom pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := s.otc(cmd.Context())
			if err != nil {
				return err
			}
			pairs, err := client.QueryPairsCount(cmd.Context(), includeExpired)
			if err != nil {
				return err
			}
			return printJSON(cmd, pairs)
		},
	}
	cmd.Flags().BoolVar(&includeExpired, "include-expired", false, "count expired escrows too")
	return cmd
}

func parsePair(value string) ([2]string, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return [2]string{}, fmt.Errorf("pair must be two denoms separated by a comma, got %q", value)
	}
	return [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}, nil
}
