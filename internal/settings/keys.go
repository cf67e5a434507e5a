package settings

const (
	KeyWorkdir   = "workdir"
	KeyConfig    = "paths.config"
	KeyTemplate  = "paths.template"
	KeyOutputDir = "paths.output"
	KeyThemesDir = "paths.themes"
)

const (
	KeyLogLevel = "log.level"
)

const (
	KeyGenerateStatic = "generate.static"
	KeySeed           = "generate.seed"
)

const (
	KeyWatchDebounce = "watch.debounce_ms"
)

const (
	KeyPreviewSwatchWidth = "preview.swatch_width"
)
