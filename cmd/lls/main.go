// Command lls is the terminal client for the language school backend:
// an interactive TUI plus a few plain subcommands for session management.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
