// Package settings manages the tool settings of viiv: registered keys with
// defaults, an optional viiv.toml in the working directory and VIIV_*
// environment variables.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/viiv-themes/viiv/internal/fsys"
)

const Name = "viiv"

var ErrUnknownKey = errors.New("unknown settings key")

var EnvKeyReplacer = strings.NewReplacer(".", "_")

type Field struct {
	Key         string
	Value       any
	Description string
}

func (f Field) Env() string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
	})
}

var (
	faintStyle = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (f Field) Pretty() string {
	var b strings.Builder
	b.WriteString(faintStyle.Render(f.Description) + "\n")
	fmt.Fprintf(&b, "%s     %s\n", labelStyle.Render("Key:"), keyStyle.Render(f.Key))
	fmt.Fprintf(&b, "%s     %s\n", labelStyle.Render("Env:"), f.Env())
	fmt.Fprintf(&b, "%s   %s\n", labelStyle.Render("Value:"), valueStyle.Render(fmt.Sprint(viper.Get(f.Key))))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Default:"), valueStyle.Render(fmt.Sprint(f.Value)))
	fmt.Fprintf(&b, "%s    %s", labelStyle.Render("Type:"), f.typeName())
	return b.String()
}

var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate settings key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	register(KeyWorkdir, ".", "Working directory holding the generator config, the template and the outputs")
	register(KeyConfig, "config.json", "Generator config file, relative to the working directory")
	register(KeyTemplate, "templates/viiv-color-theme.template.json", "Theme template file, relative to the working directory")
	register(KeyOutputDir, "output", "Directory for palettes and group reports, relative to the working directory")
	register(KeyThemesDir, "themes", "Directory for generated theme files, relative to the working directory")
	register(KeyLogLevel, "info", "Available options are: debug, info, warn, error, fatal")
	register(KeyGenerateStatic, false, "Render the existing template placeholders without re-assigning them from the config")
	register(KeySeed, 0, "Random seed. 0 picks a fresh seed on every run")
	register(KeyWatchDebounce, 300, "Milliseconds to wait for more file events before regenerating")
	register(KeyPreviewSwatchWidth, 9, "Width of a color swatch in print and browse output")
}

// Setup loads defaults, the optional viiv.toml from the working directory and
// the environment.
func Setup() error {
	viper.SetConfigName(Name)
	viper.SetConfigType("toml")
	viper.SetFs(fsys.API())
	viper.AddConfigPath(".")
	if wd := viper.GetString(KeyWorkdir); wd != "" {
		viper.AddConfigPath(wd)
	}

	viper.SetEnvPrefix(Name)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read %s.toml: %w", Name, err)
	}

	return nil
}

// Fields returns the requested fields sorted by key. No keys means all.
func Fields(keys ...string) ([]Field, error) {
	if len(keys) == 0 {
		fields := lo.Values(Default)
		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})
		return fields, nil
	}

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		field, ok := Default[k]
		if !ok {
			return nil, UnknownKey(k)
		}
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields, nil
}

func UnknownKey(key string) error {
	closest := Closest(key, lo.Keys(Default))
	return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownKey, key, closest)
}

// Closest returns the candidate with the smallest edit distance to s.
func Closest(s string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	return lo.MinBy(sorted, func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
}

// Path resolves a path setting against the working directory.
func Path(key string) string {
	p := viper.GetString(key)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(viper.GetString(KeyWorkdir), p)
}

func ConfigPath() string   { return Path(KeyConfig) }
func TemplatePath() string { return Path(KeyTemplate) }
func OutputDir() string    { return Path(KeyOutputDir) }
func ThemesDir() string    { return Path(KeyThemesDir) }
