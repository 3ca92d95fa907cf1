package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmelton/fuzzdex/internal/adapters/fsnotify"
	"github.com/dmelton/fuzzdex/internal/app"
)

var replCmd = &cobra.Command{
	Use:   "repl <dataset>",
	Short: "Interactive search with live dataset reload",
	Long: `Reads queries from stdin, one per line, and prints ranked identifiers.
The dataset file is watched; edits rebuild the index between queries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := engineOptions(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(args[0], opts)
		if err != nil {
			return err
		}
		defer a.Close()

		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		err = a.WatchWith(w, func() {
			fmt.Printf("reloaded %s (%d entries)\n", args[0], a.Len())
		})
		if err != nil {
			return err
		}

		fmt.Printf("loaded %s (%d entries), type a query:\n", args[0], a.Len())

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				query := strings.TrimSpace(scanner.Text())
				if query == "" {
					continue
				}
				results := a.Search(query, flagReplLimit)
				if len(results) == 0 {
					fmt.Println("(no matches)")
					continue
				}
				for i, id := range results {
					fmt.Printf("%2d. %s\n", i+1, id)
				}
			}
			return scanner.Err()
		})
		return g.Wait()
	},
}

var flagReplLimit int

func init() {
	replCmd.Flags().IntVar(&flagReplLimit, "limit", 10, "maximum results per query (0 = unlimited)")
}
