// Package cmd implements the command-line interface for colordict.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/constant"
	"github.com/colordict-cli/colordict/icon"
	"github.com/colordict-cli/colordict/key"
	"github.com/colordict-cli/colordict/log"
	"github.com/colordict-cli/colordict/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("mode", "m", "", "Representation colors are returned in")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return colormath.Modes(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.ColorsMode, rootCmd.PersistentFlags().Lookup("mode")))

	rootCmd.PersistentFlags().BoolP("grayscale", "g", false, "Convert colors to grayscale on read")
	lo.Must0(viper.BindPFlag(key.ColorsGrayscale, rootCmd.PersistentFlags().Lookup("grayscale")))

	rootCmd.PersistentFlags().String("palettes-path", "", "Directory the palette files are loaded from")
	lo.Must0(viper.BindPFlag(key.PalettesPath, rootCmd.PersistentFlags().Lookup("palettes-path")))

	rootCmd.PersistentFlags().StringSliceP("load", "L", []string{}, "Restrict loading to the named palettes")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("load", completionPaletteNames))
	lo.Must0(viper.BindPFlag(key.PalettesLoad, rootCmd.PersistentFlags().Lookup("load")))
}

// rootCmd defines the entry point for the colordict application.
var rootCmd = &cobra.Command{
	Use:   constant.ColorDict,
	Short: "A command-line dictionary of named colors, palettes and gradients",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.HiRed).Render("    - A command-line dictionary of named colors, palettes and gradients"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
