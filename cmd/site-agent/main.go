package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "site-agent",
		Short: "Site agent CLI - generate website projects and manage conversations",
		Long: `site-agent drives the site generation agent from the command line.

It shares configuration with the HTTP server: environment variables,
optionally loaded from a .env file in the working directory.

Examples:
  # Generate a project in ./output
  site-agent generate --objective "Landing page for a barbershop" --git

  # Inspect stored conversations
  site-agent conversations list
  site-agent conversations export my-blog-20240501_100000 --format markdown`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newConversationsCmd())

	return root
}
