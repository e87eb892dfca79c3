// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Color Value Semantics - these keys govern how stored colors are interpreted and returned.
const (
	ColorsNorm      = "colors.norm"
	ColorsMode      = "colors.mode"
	ColorsGrayscale = "colors.grayscale"
)

// Palette Loading - these keys configure which palettes are loaded and from where.
const (
	PalettesPath = "palettes.path"
	PalettesLoad = "palettes.load"
)

// Lookup History - these keys configure the persistence of color lookups.
const (
	HistorySaveOnGet = "history.save_on_get"
)

// Search Interaction - these keys define the UX parameters for name discovery.
const (
	SearchShowSuggestions = "search.show_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application's terminal behavior.
const (
	CliColored = "cli.colored"
)
