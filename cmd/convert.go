// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/key"
	"github.com/colordict-cli/colordict/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("to", "t", "", "Target representation (defaults to the configured mode)")
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return colormath.Modes(), cobra.ShellCompDirectiveDefault
	}))
	convertCmd.SetOut(os.Stdout)
}

// convertCmd converts a literal color value between representations without
// touching any dictionary state.
var convertCmd = &cobra.Command{
	Use:   "convert [value...]",
	Short: "Convert a literal color value between representations",
	Long: "Convert a literal color value between representations.\n" +
		"Input is a hex literal (6 digits, or 8 digits with a leading alpha byte) or 3-4 channel components at norm 255.",
	Example: "  colordict convert '#1e90ff' --to hsv\n" +
		"  colordict convert cc1e90ff --to rgba\n" +
		"  colordict convert 30 144 255 --to hls",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := lo.Must(cmd.Flags().GetString("to"))
		if target == "" {
			target = viper.GetString(key.ColorsMode)
		}
		mode, err := colormath.ParseMode(target)
		handleErr(err)

		value, err := parseLooseColorInput(args)
		handleErr(err)

		preview := colormath.RGBToHex(value)
		if mode == colormath.ModeHex {
			cmd.Printf("%s %s\n", style.Swatch(preview), preview)
			return
		}

		cmd.Printf("%s %s\n", style.Swatch(preview), formatValue(mode, mode.FromRGBA(value, 255)))
	},
}

// parseLooseColorInput accepts the convert command's wider input surface: a
// 6-digit hex literal, an 8-digit "#aarrggbb" literal with a leading alpha
// byte, or plain channel components at norm 255.
func parseLooseColorInput(args []string) (colormath.Value, error) {
	if len(args) != 1 || isNumeric(args[0]) {
		return parseColorInput(args, 255)
	}

	literal := strings.TrimPrefix(args[0], "#")
	if len(literal) != 8 {
		return parseColorInput(args, 255)
	}

	alpha, err := strconv.ParseUint(literal[:2], 16, 16)
	if err != nil {
		return parseColorInput(args, 255)
	}
	rgb, err := colormath.HexToRGB(literal[2:])
	if err != nil {
		return nil, err
	}
	return append(rgb, float64(alpha)), nil
}
