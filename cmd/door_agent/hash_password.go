package main

import (
	"fmt"

	"github.com/melissa/door-compliance/internal/config"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash a password for the accounts section of the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPasswordCmd,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPasswordCmd(cmd *cobra.Command, args []string) error {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	hash, err := passwordConfig.HashPassword(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
