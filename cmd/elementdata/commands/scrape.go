package commands

import (
	"elementdata/lib/configutil"
	"elementdata/lib/serviceutil"
	"elementdata/services/elements"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/spf13/cobra"
)

var scrapeOutput *string

func init() {
	scrapeOutput = scrapeCmd.Flags().String("out", "", "Write the dataset to this file instead of the configured one.")
	rootCmd.AddCommand(scrapeCmd)
}

// scrapeConfig reads config.json5 if one exists; the built-in defaults
// talk to the live sources, a config file mostly exists to point the
// pipeline at fixtures.
func scrapeConfig() elements.Config {
	cfg := elements.DefaultConfig()

	override, err := configutil.ReadConfig[elements.Config]("config.json5")
	if os.IsNotExist(err) {
		return cfg
	}
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	err = mergo.Merge(&cfg, override, mergo.WithOverride)
	if err != nil {
		serviceutil.Fatal("failed to merge config", err)
	}
	return cfg
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--out <path/to/output.json>]",
	Short: "Fetches both sources, merges them and writes the element dataset.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := scrapeConfig()
		if *scrapeOutput != "" {
			cfg.OutputFile = *scrapeOutput
		}

		t1 := time.Now()
		err := elements.Run(cmd.Context(), cfg)
		if err != nil {
			serviceutil.Fatal("scrape failed", err)
		}
		t2 := time.Now()

		slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds())
	},
}
