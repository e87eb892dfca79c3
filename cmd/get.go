// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/history"
	"github.com/colordict-cli/colordict/log"
	"github.com/colordict-cli/colordict/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolP("quiet", "q", false, "Print only the color value without decoration")
	getCmd.SetOut(os.Stdout)
}

// getCmd resolves a color name to its value in the configured representation.
var getCmd = &cobra.Command{
	Use:               "get [name]",
	Short:             "Look up a named color and display it in the configured representation",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionColorNames,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			name  = args[0]
			quiet = lo.Must(cmd.Flags().GetBool("quiet"))
		)

		d, err := openDictionary()
		handleErr(err)

		hex, err := d.GetHex(name)
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			if suggestions := history.SuggestMany(name); len(suggestions) > 0 {
				handleErr(errClosestName(name, suggestions))
			}
			handleErr(errClosestName(name, d.Names()))
		}
		handleErr(err)

		if err := history.Remember(name, hex); err != nil {
			log.Warnf("record lookup %q: %v", name, err)
		}

		rendered := hex
		if d.Mode() != colormath.ModeHex {
			value, err := d.Get(name)
			handleErr(err)
			rendered = formatValue(d.Mode(), value)
		}

		if quiet {
			cmd.Println(rendered)
			return
		}

		memberships := lo.Map(d.PalettesOf(name), func(paletteName string, _ int) string {
			return style.Tag(style.Black, style.Cyan)(paletteName)
		})

		cmd.Printf(
			"%s %s %s %s\n",
			style.Swatch(hex),
			style.Bold(name),
			rendered,
			strings.Join(memberships, " "),
		)
	},
}
