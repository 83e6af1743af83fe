package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelfctl/internal/demo"
)

var flagDemoAddr string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an in-memory demo catalog API",
	Long: `Serves a seeded, in-memory implementation of the catalog REST API so
the interactive browser can be tried without a real backend:

  shelfctl demo &
  shelfctl --api-url http://localhost:5255/api

Data is lost when the process exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("demo catalog API listening on %s (base URL http://localhost%s/api)\n",
			flagDemoAddr, flagDemoAddr)
		return demo.NewServer().Run(flagDemoAddr)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shelfctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shelfctl " + version)
	},
}

// version is overridden at build time via -ldflags.
var version = "dev"

func init() {
	demoCmd.Flags().StringVar(&flagDemoAddr, "addr", ":5255", "listen address")
}
