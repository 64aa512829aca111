package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/tidarr/internal/ids"
)

func newIDCommand() *cobra.Command {
	idCmd := &cobra.Command{
		Use:   "id",
		Short: "Encode and decode synthetic identifiers",
	}

	idCmd.AddCommand(&cobra.Command{
		Use:   "encode <artist|album|track|release|recording> <catalog id>",
		Short: "Print the synthetic identifier for a catalog id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := ids.ParseKind(args[0])
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || id < 0 || id > ids.MaxID {
				return fmt.Errorf("catalog id must be between 0 and %d, got %q", ids.MaxID, args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ids.Encode(id, kind))
			return nil
		},
	})

	idCmd.AddCommand(&cobra.Command{
		Use:   "decode <identifier>",
		Short: "Print the kind and catalog id behind a synthetic identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, kind, err := ids.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", kind, id)
			return nil
		},
	})

	return idCmd
}
