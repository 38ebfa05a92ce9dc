package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "saffran",
	Short: "Simulate statistical word-segmentation learning with timed " +
		"recognition tests.",
	Long: `The saffran tool replays a classic word-segmentation study with ` +
		`simulated listeners. A sweep covers every combination of trace ` +
		`decay, discrimination time and familiarisation time, repeats each ` +
		`combination, and reports per-repeat statistics, per-type averages ` +
		`and the fit against the study's published listening times.`,
}

// A .env file in the working directory can override the flag defaults; a
// missing file is fine. Loaded here so later files' init functions see the
// variables when they register flags.
func init() {
	_ = godotenv.Load()
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
