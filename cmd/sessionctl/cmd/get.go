package cmd

import (
	"ivr-server/internal/store"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <phone-number>",
	Short: "Print a caller session as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Storer) error {
			session, err := s.GetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printSession(cmd.OutOrStdout(), session)
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
