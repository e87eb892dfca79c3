// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/icon"
	"github.com/colordict-cli/colordict/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("palette", "P", "", "Palette the color is registered into")
	lo.Must0(addCmd.RegisterFlagCompletionFunc("palette", completionPaletteNames))
	addCmd.Flags().BoolP("force", "f", false, "Overwrite an existing color without confirmation")
	addCmd.Flags().Bool("no-save", false, "Keep the addition in memory checks only, without writing palette files")
}

// addCmd registers a new named color in a palette.
var addCmd = &cobra.Command{
	Use:   "add [name] [value...]",
	Short: "Register a named color in a palette and persist it",
	Long: "Register a named color in a palette and persist it.\n" +
		"The value is either a hex literal (\"#1e90ff\") or 3-4 channel components at the configured norm.",
	Example: "  colordict add dodgerblue '#1e90ff' -P favorites\n" +
		"  colordict add smoke 245 245 245",
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			name        = args[0]
			force       = lo.Must(cmd.Flags().GetBool("force"))
			noSave      = lo.Must(cmd.Flags().GetBool("no-save"))
			paletteName = lo.Must(cmd.Flags().GetString("palette"))
		)

		d, err := openDictionary()
		handleErr(err)

		value, err := parseColorInput(args[1:], d.Norm())
		handleErr(err)

		err = d.Add(name, value, paletteName, !force)

		var conflict *apperr.ConflictError
		if errors.As(err, &conflict) {
			var overwrite bool
			prompt := survey.Confirm{
				Message: fmt.Sprintf("%q already exists with value %v. Overwrite it?", conflict.Name, conflict.Existing),
				Default: false,
			}
			handleErr(survey.AskOne(&prompt, &overwrite))

			if !overwrite {
				fmt.Printf("%s %s was left unchanged\n", icon.Get(icon.Fail), name)
				return
			}
			err = d.Add(name, value, paletteName, false)
		}
		handleErr(err)

		if !noSave {
			handleErr(d.Save())
		}

		hex, err := d.GetHex(name)
		handleErr(err)
		fmt.Printf(
			"%s %s added %s as %s\n",
			style.Fg(style.Green)(icon.Get(icon.Success)),
			style.Swatch(hex),
			style.Bold(name),
			hex,
		)
	},
}
