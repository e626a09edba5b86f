package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/entroplot"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of entroplot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("entroplot version %s\n", strings.TrimSpace(entroplot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
