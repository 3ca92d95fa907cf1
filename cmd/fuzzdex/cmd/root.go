package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmelton/fuzzdex/internal/config"
	"github.com/dmelton/fuzzdex/internal/ports"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzdex",
	Short: "fuzzdex — in-memory fuzzy string search",
	Long:  "Approximate string search over a dataset file: register labels, query with typos, get ranked matches.",
}

var (
	flagConfig        string
	flagThreshold     float64
	flagCaseSensitive bool
	flagLevenshtein   bool
	flagStopWords     []string
)

// engineOptions merges the config file with command-line overrides.
func engineOptions(cmd *cobra.Command) (ports.SearchOptions, error) {
	opts, err := config.Load(flagConfig)
	if err != nil {
		return ports.SearchOptions{}, err
	}
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = flagThreshold
	}
	if cmd.Flags().Changed("case-sensitive") {
		opts.CaseSensitive = flagCaseSensitive
	}
	if cmd.Flags().Changed("levenshtein") {
		opts.Levenshtein = flagLevenshtein
	}
	if cmd.Flags().Changed("stop-words") {
		opts.StopWords = flagStopWords
	}
	return opts, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file")
	pf.Float64Var(&flagThreshold, "threshold", ports.DefaultThreshold, "minimum per-token similarity")
	pf.BoolVar(&flagCaseSensitive, "case-sensitive", false, "disable case folding")
	pf.BoolVar(&flagLevenshtein, "levenshtein", false, "use the Levenshtein metric instead of Jaro-Winkler")
	pf.StringSliceVar(&flagStopWords, "stop-words", nil, "tokens excluded from indexing and matching")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(replCmd)
}
