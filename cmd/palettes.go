// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/colordict-cli/colordict/palette"
	"github.com/colordict-cli/colordict/style"
	"github.com/colordict-cli/colordict/util"
	"github.com/invopop/jsonschema"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(palettesCmd)
	palettesCmd.SetOut(os.Stdout)
}

// palettesCmd lists the palettes available at the configured path.
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the palettes available at the configured palettes path",
	Run: func(cmd *cobra.Command, args []string) {
		d, err := openDictionary()
		handleErr(err)

		width := 80
		if w, _, err := util.TerminalSize(); err == nil {
			// Keep a usable strip even on very narrow terminals.
			width = util.Max(w, 2*style.SwatchWidth)
		}

		for _, name := range d.Palettes() {
			members, err := d.Members(name)
			handleErr(err)

			cmd.Printf("%s %s\n", style.Title(name), style.Faint(util.Quantify(len(members), "color", "colors")))

			hexes := make([]string, 0, len(members))
			for _, member := range lo.Slice(members, 0, width-1) {
				hex, err := d.GetHex(member)
				handleErr(err)
				hexes = append(hexes, hex)
			}
			cmd.Println(style.SwatchBar(hexes))
		}
	},
}

func init() {
	palettesCmd.AddCommand(palettesSchemaCmd)
	palettesSchemaCmd.SetOut(os.Stdout)
}

// palettesSchemaCmd emits a JSON Schema describing the palette file format.
var palettesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print a JSON Schema describing the palette file format",
	Long: wordwrap.String(
		"Print a JSON Schema describing the palette file format: one object keyed by color name, "+
			"each value an array of 3 or 4 channel values at norm 255. "+
			"Useful for validating palette files produced by other tooling.", 80),
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		schema := reflector.Reflect(&palette.File{})

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "    ")
		handleErr(encoder.Encode(schema))
	},
}
