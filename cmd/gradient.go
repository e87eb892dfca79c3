// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"errors"
	"os"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/gradient"
	"github.com/colordict-cli/colordict/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gradientCmd)
	gradientCmd.Flags().IntP("samples", "n", 10, "Number of interpolated samples")
	gradientCmd.Flags().Bool("closed", false, "Sample the closed interval, including the anchor endpoints")
	gradientCmd.Flags().Bool("bar", false, "Print only the swatch bar")
	gradientCmd.SetOut(os.Stdout)
}

// gradientCmd interpolates a gradient across named colors or hex literals.
var gradientCmd = &cobra.Command{
	Use:   "gradient [color...]",
	Short: "Interpolate a linear gradient across the given anchor colors",
	Long: "Interpolate a linear gradient across the given anchor colors.\n" +
		"Anchors are loaded color names or hex literals and are interpolated channelwise in RGBA.",
	Example: "  colordict gradient red gold -n 16\n" +
		"  colordict gradient '#1e90ff' white --closed -n 8",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionColorNames,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			samples = lo.Must(cmd.Flags().GetInt("samples"))
			closed  = lo.Must(cmd.Flags().GetBool("closed"))
			barOnly = lo.Must(cmd.Flags().GetBool("bar"))
		)

		d, err := openDictionary()
		handleErr(err)

		anchors := make([]colormath.Value, len(args))
		for i, arg := range args {
			anchor, err := d.GetIn(arg, colormath.ModeRGBA)

			var notFound *apperr.NotFoundError
			if errors.As(err, &notFound) {
				// Not a loaded name; accept a hex literal anchor instead.
				rgb, hexErr := colormath.HexToRGB(arg)
				if hexErr != nil {
					handleErr(errClosestName(arg, d.Names()))
				}
				anchor = colormath.Renorm(rgb, 255, d.Norm())
				err = nil
			}
			handleErr(err)
			anchors[i] = anchor
		}

		g, err := gradient.NewLinear(d.Norm(), anchors...)
		handleErr(err)

		colors, err := g.Colors(samples, !closed)
		handleErr(err)

		hexes := make([]string, len(colors))
		for i, c := range colors {
			hexes[i] = colormath.RGBToHex(colormath.Renorm(c, d.Norm(), 255))
		}

		cmd.Println(style.SwatchBar(hexes))
		if barOnly {
			return
		}

		for i, c := range colors {
			cmd.Printf("%s %s %s\n", style.Swatch(hexes[i]), hexes[i], style.Faint(formatValue(colormath.ModeRGBA, c)))
		}
	},
}
