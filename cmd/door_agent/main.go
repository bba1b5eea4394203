// Package main provides the entry point for the door compliance evaluator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "door_agent",
	Short: "CBC 11B-404 door compliance evaluator",
	Long:  "door_agent evaluates surveyed door measurements against California Building Code Chapter 11B Section 404 (Doors, Doorways, and Gates) and reports accessibility violations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
