package cmd

import (
	"time"

	"ivr-server/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var createUserID string

var createCmd = &cobra.Command{
	Use:   "create <phone-number>",
	Short: "Create a session that starts in enrollment",
	Long: `Create a session with enrolling=true and no recorded enrollments. Without --user-id a
placeholder id is generated; use the id of an existing VoiceIt user for real calls.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := createUserID
		if userID == "" {
			userID = "usr_" + uuid.NewString()
		}
		return withStore(func(s store.Storer) error {
			session, err := s.CreateSession(cmd.Context(), store.CreateSessionParams{
				PhoneNumber: args[0],
				UserID:      userID,
				Enrolling:   true,
				AuthTime:    time.Now(),
			})
			if err != nil {
				return err
			}
			return printSession(cmd.OutOrStdout(), session)
		})
	},
}

func init() {
	createCmd.Flags().StringVar(&createUserID, "user-id", "", "VoiceIt user id for the caller")
	rootCmd.AddCommand(createCmd)
}
