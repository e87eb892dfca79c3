// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/colordict-cli/colordict/colordict"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/key"
	"github.com/colordict-cli/colordict/palette"
	"github.com/colordict-cli/colordict/style"
	"github.com/colordict-cli/colordict/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// palettesPath resolves the effective palettes directory from configuration.
func palettesPath() string {
	if path := viper.GetString(key.PalettesPath); path != "" {
		return path
	}
	return where.Palettes()
}

// openDictionary constructs the dictionary described by the global configuration,
// seeding the builtin palette on a pristine install.
func openDictionary() (*colordict.Dictionary, error) {
	path := palettesPath()
	if err := palette.NewStore(path).EnsureSeeded(); err != nil {
		return nil, err
	}

	mode, err := colormath.ParseMode(viper.GetString(key.ColorsMode))
	if err != nil {
		return nil, err
	}

	return colordict.New(colordict.Options{
		Norm:      viper.GetFloat64(key.ColorsNorm),
		Mode:      mode,
		Grayscale: viper.GetBool(key.ColorsGrayscale),
		Path:      path,
		Palettes:  viper.GetStringSlice(key.PalettesLoad),
	})
}

// errClosestName builds a "did you mean" error for a missed color lookup.
func errClosestName(name string, known []string) error {
	if len(known) == 0 {
		return fmt.Errorf("unknown color %s", style.Fg(style.Red)(name))
	}

	closest := lo.MinBy(known, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	msg := fmt.Sprintf(
		"unknown color %s, did you mean %s?",
		style.Fg(style.Red)(name),
		style.Fg(style.Yellow)(closest),
	)
	return errors.New(msg)
}

// parseColorInput interprets CLI color input: either a hex literal or 3-4
// numeric channel components at the dictionary norm.
func parseColorInput(args []string, norm float64) (colormath.Value, error) {
	if len(args) == 1 && !isNumeric(args[0]) {
		rgb, err := colormath.HexToRGB(args[0])
		if err != nil {
			return nil, err
		}
		return colormath.Renorm(rgb, 255, norm), nil
	}

	value := make(colormath.Value, 0, len(args))
	for _, arg := range args {
		spec, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid channel value %q: %w", arg, err)
		}
		value = append(value, spec)
	}
	return value, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// formatValue renders a converted value for terminal display in the given mode.
func formatValue(mode colormath.Mode, v colormath.Value) string {
	specs := make([]string, len(v))
	for i, spec := range v {
		specs[i] = strconv.FormatFloat(spec, 'g', 6, 64)
	}
	return fmt.Sprintf("%s(%s)", mode, strings.Join(specs, ", "))
}

// completionColorNames offers loaded color names for shell completion.
func completionColorNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	d, err := openDictionary()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return d.Names(), cobra.ShellCompDirectiveNoFileComp
}

// completionPaletteNames offers available palette names for shell completion.
func completionPaletteNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names, err := palette.NewStore(palettesPath()).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
