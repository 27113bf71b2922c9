// Package cmd is for command line interactions with the redesign application
package cmd

import (
	"log"

	"github.com/DivyKalyani05/BBL-434-Assignment1/internal/redesign"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	enzymeDB = redesign.NewEnzymeDB()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "redesign",
	Short: `Edit a plasmid to match a design specification.
The origin of replication is detected and preserved while disallowed
restriction sites are removed`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// read in settings.yaml (optional, defaults apply without it)
func init() {
	viper.SetConfigName("settings")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}
}
