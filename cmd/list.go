// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"os"

	"github.com/colordict-cli/colordict/style"
	"github.com/colordict-cli/colordict/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("filter", "f", "", "Fuzzily filter color names")
	listCmd.Flags().StringP("palette", "P", "", "Show only the members of one palette")
	lo.Must0(listCmd.RegisterFlagCompletionFunc("palette", completionPaletteNames))
	listCmd.SetOut(os.Stdout)
}

// listCmd displays the loaded colors grouped by palette.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded colors and the palettes they belong to",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filter      = lo.Must(cmd.Flags().GetString("filter"))
			paletteName = lo.Must(cmd.Flags().GetString("palette"))
		)

		d, err := openDictionary()
		handleErr(err)

		palettes := d.Palettes()
		if paletteName != "" {
			palettes = []string{paletteName}
		}

		for i, name := range palettes {
			members, err := d.Members(name)
			handleErr(err)

			if filter != "" {
				members = fuzzy.FindFold(filter, members)
			}
			if len(members) == 0 {
				continue
			}

			cmd.Printf("%s %s\n", style.Title(name), style.Faint(util.Quantify(len(members), "color", "colors")))

			nameColumn := style.Truncate(util.Max(24, len(lo.MaxBy(members, func(a, b string) bool {
				return len(a) > len(b)
			}))))
			for _, member := range members {
				hex, err := d.GetHex(member)
				handleErr(err)
				cmd.Printf("  %s %s %s\n", style.Swatch(hex), nameColumn(member), style.Faint(hex))
			}

			if i < len(palettes)-1 {
				cmd.Println()
			}
		}
	},
}
