package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	serveCmd := newServeCmd(opts)

	rootCmd := &cobra.Command{
		Use:   "userservice",
		Short: "HTTP service exposing a liveness probe and a user-creation endpoint",
		Long: `userservice serves GET /ping, which answers "I am alive" while the
process is up, and POST /users, a placeholder that accepts any request.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// Running the bare binary starts the server.
		RunE: serveCmd.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
