package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmelton/fuzzdex/internal/app"
)

var flagLimit int

var queryCmd = &cobra.Command{
	Use:   "query <dataset> <pattern>",
	Short: "One-shot fuzzy search over a dataset file",
	Long: `Loads a dataset file and prints the identifiers matching the pattern,
best first. Each non-empty line of the dataset is one entry:
"id<TAB>label", or a bare label whose line number becomes the id.
Repeated ids accumulate aliases.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := engineOptions(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(args[0], opts)
		if err != nil {
			return err
		}

		for _, id := range a.Search(args[1], flagLimit) {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum results (0 = unlimited)")
}
