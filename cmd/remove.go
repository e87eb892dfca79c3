// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/colordict-cli/colordict/colordict"
	"github.com/colordict-cli/colordict/icon"
	"github.com/colordict-cli/colordict/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().StringP("palette", "P", "", "Palette the membership is removed from")
	lo.Must0(removeCmd.RegisterFlagCompletionFunc("palette", completionPaletteNames))
	removeCmd.Flags().BoolP("all", "a", false, "Remove the color from every palette")
	removeCmd.MarkFlagsMutuallyExclusive("palette", "all")
}

// removeCmd drops a color's palette membership, or the color entirely.
var removeCmd = &cobra.Command{
	Use:               "remove [name]",
	Short:             "Remove a color from a palette, or from every palette with --all",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionColorNames,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			name        = args[0]
			all         = lo.Must(cmd.Flags().GetBool("all"))
			paletteName = lo.Must(cmd.Flags().GetString("palette"))
		)

		d, err := openDictionary()
		handleErr(err)

		if all {
			var confirmed bool
			prompt := survey.Confirm{
				Message: fmt.Sprintf("Remove %q from every palette?", name),
				Default: false,
			}
			handleErr(survey.AskOne(&prompt, &confirmed))
			if !confirmed {
				return
			}

			handleErr(d.RemoveAll(name))
		} else {
			if paletteName == "" {
				// Without an explicit palette, a sole membership is unambiguous.
				switch owners := d.PalettesOf(name); len(owners) {
				case 0:
					paletteName = colordict.IndependentPalette
				case 1:
					paletteName = owners[0]
				default:
					handleErr(fmt.Errorf(
						"%s belongs to several palettes (%s), pass --palette to pick one or --all to remove it everywhere",
						style.Bold(name),
						strings.Join(owners, ", "),
					))
				}
			}
			handleErr(d.Remove(name, paletteName))
		}

		handleErr(d.Save())
		fmt.Printf("%s removed %s\n", style.Fg(style.Green)(icon.Get(icon.Success)), style.Bold(name))
	},
}
