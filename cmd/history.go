// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"os"

	"github.com/colordict-cli/colordict/history"
	"github.com/colordict-cli/colordict/style"
	"github.com/colordict-cli/colordict/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 0, "Maximum number of entries to show, 0 for all")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists remembered color lookups sorted by popularity.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List remembered color lookups sorted by popularity",
	Run: func(cmd *cobra.Command, args []string) {
		limit := lo.Must(cmd.Flags().GetInt("limit"))

		records, err := history.All()
		handleErr(err)

		if len(records) == 0 {
			cmd.Println(style.Faint("No lookups remembered yet"))
			return
		}

		if limit > 0 {
			records = lo.Slice(records, 0, limit)
		}

		cmd.Println(style.Title(util.Quantify(len(records), "lookup", "lookups")))
		for _, record := range records {
			cmd.Printf(
				"%s %s %s\n",
				style.Swatch(record.Hex),
				style.Bold(record.Name),
				style.Faint(util.Quantify(record.Rank, "hit", "hits")),
			)
		}
	},
}
