package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "microtoml",
	Short: "Microtoml is a minimal reader for a TOML subset.",
	Long:  "Microtoml is a minimal reader for a TOML subset. It parses flat tables, arrays of tables and typed scalars, and looks up keys from the command line.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Microtoml",
	Long:  `All software has versions. This is Microtoml's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Microtoml v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tomlCmd)
}
