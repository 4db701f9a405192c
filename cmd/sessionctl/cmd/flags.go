package cmd

import (
	"ivr-server/internal/store"

	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <phone-number>",
	Short: "Route the caller's next call into enrollment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFlags(cmd, args[0], false, true)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <phone-number>",
	Short: "Route the caller's next call into verification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFlags(cmd, args[0], true, false)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <phone-number>",
	Short: "Clear flags, enrollments and verification, keeping the user id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Storer) error {
			if err := s.ResetSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printCurrent(cmd, s, args[0])
		})
	},
}

func setFlags(cmd *cobra.Command, phoneNumber string, verifying, enrolling bool) error {
	return withStore(func(s store.Storer) error {
		if err := s.SetFlowFlags(cmd.Context(), phoneNumber, verifying, enrolling); err != nil {
			return err
		}
		return printCurrent(cmd, s, phoneNumber)
	})
}

func printCurrent(cmd *cobra.Command, s store.Storer, phoneNumber string) error {
	session, err := s.GetSession(cmd.Context(), phoneNumber)
	if err != nil {
		return err
	}
	return printSession(cmd.OutOrStdout(), session)
}

func init() {
	rootCmd.AddCommand(enrollCmd, verifyCmd, resetCmd)
}
