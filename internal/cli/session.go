package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cuegen/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset the local session",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current session as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, path, err := loadSession()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		logger.Debugw("Session file", "path", path)
		return nil
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sessionFile()
		if err != nil {
			return err
		}
		if err := session.Clear(path); err != nil {
			return err
		}
		fmt.Println("Session cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
}
