package types

// LogFormat selects how log records are rendered.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// DefaultIndent is the YAML indentation used when none is configured.
const DefaultIndent = 2

// LogConfig holds logger settings shared by every stage.
type LogConfig struct {
	// Debug enables debug-level records (document dumps, per-binding lines).
	Debug bool `json:"debug" yaml:"debug"`

	// Format selects the text or JSON formatter (default text).
	Format LogFormat `json:"log_format" yaml:"log_format"`
}

// ConversionConfig holds settings for a conversion run. It is resolved from
// flags, environment and config file by the CLI and passed down explicitly.
type ConversionConfig struct {
	LogConfig `yaml:",inline"`

	// OutDir replaces the directory of every derived output path.
	OutDir string `json:"outdir" yaml:"outdir"`

	// OutFile is the exact output path. Only valid with a single input.
	OutFile string `json:"outfile" yaml:"outfile"`

	// Indent is the YAML indentation width (default 2).
	Indent int `json:"indent" yaml:"indent"`
}

// EffectiveIndent returns Indent, or DefaultIndent when unset.
func (c ConversionConfig) EffectiveIndent() int {
	if c.Indent <= 0 {
		return DefaultIndent
	}
	return c.Indent
}
