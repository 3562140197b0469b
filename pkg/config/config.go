// Package config loads renderer settings from TOML.
//
// A configuration file has three tables, all optional:
//
//	[aligner]
//	align = "left"          # shorthand for every alignment not set below
//	gap = 2
//	[aligner.bottom_connection]
//	connect = "context"
//
//	[liner]
//	glyphs = "ascii"
//	bottom_height = 0
//	[liner.overrides]
//	bracket = "-"
//
//	[printer]
//	placeholders = true
//
// Keys that are not recognized are rejected, so typos fail loudly instead of
// silently falling back to defaults.
package config

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/render"
	"github.com/matzehuels/treeprinter/pkg/render/layout"
	"github.com/matzehuels/treeprinter/pkg/render/liner"
)

// Config is the complete set of renderer settings.
type Config struct {
	Aligner AlignerConfig `toml:"aligner"`
	Liner   LinerConfig   `toml:"liner"`
	Printer PrinterConfig `toml:"printer"`
}

// AlignerConfig mirrors [layout.Options].
type AlignerConfig struct {
	Align            string                 `toml:"align,omitempty"`
	ContentAlign     layout.HorizontalAlign `toml:"content_align"`
	ContentOffset    int                    `toml:"content_offset"`
	ChildrenAlign    layout.HorizontalAlign `toml:"children_align"`
	Gap              int                    `toml:"gap"`
	TopConnection    ConnectionConfig       `toml:"top_connection"`
	BottomConnection ConnectionConfig       `toml:"bottom_connection"`
}

// ConnectionConfig mirrors [layout.Connection].
type ConnectionConfig struct {
	Align   layout.HorizontalAlign `toml:"align"`
	Connect layout.ConnectMode     `toml:"connect"`
	Offset  int                    `toml:"offset"`
}

// LinerConfig mirrors [liner.Options]. Glyphs names a built-in set and
// Overrides replaces individual glyphs by name (see [liner.GlyphNames]).
type LinerConfig struct {
	Glyphs       string            `toml:"glyphs"`
	TopHeight    int               `toml:"top_height"`
	BottomHeight int               `toml:"bottom_height"`
	Bracket      bool              `toml:"bracket"`
	Overrides    map[string]string `toml:"overrides,omitempty"`
}

// PrinterConfig holds settings of the printer itself.
type PrinterConfig struct {
	Placeholders bool `toml:"placeholders"`
}

// Default returns the configuration matching the library defaults.
func Default() *Config {
	a := layout.DefaultOptions()
	l := liner.DefaultOptions()
	return &Config{
		Aligner: AlignerConfig{
			ContentAlign:     a.ContentAlign,
			ContentOffset:    a.ContentOffset,
			ChildrenAlign:    a.ChildrenAlign,
			Gap:              a.Gap,
			TopConnection:    ConnectionConfig(a.TopConnection),
			BottomConnection: ConnectionConfig(a.BottomConnection),
		},
		Liner: LinerConfig{
			Glyphs:       "unicode",
			TopHeight:    l.TopHeight,
			BottomHeight: l.BottomHeight,
			Bracket:      l.Bracket,
		},
	}
}

// SetAlign sets the content, children and both connection alignments.
func (a *AlignerConfig) SetAlign(h layout.HorizontalAlign) {
	a.ContentAlign = h
	a.ChildrenAlign = h
	a.TopConnection.Align = h
	a.BottomConnection.Align = h
}

// Parse decodes TOML on top of [Default] and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	if cfg.Aligner.Align != "" {
		h, err := layout.ParseAlign(cfg.Aligner.Align)
		if err != nil {
			return nil, err
		}
		if !md.IsDefined("aligner", "content_align") {
			cfg.Aligner.ContentAlign = h
		}
		if !md.IsDefined("aligner", "children_align") {
			cfg.Aligner.ChildrenAlign = h
		}
		if !md.IsDefined("aligner", "top_connection", "align") {
			cfg.Aligner.TopConnection.Align = h
		}
		if !md.IsDefined("aligner", "bottom_connection", "align") {
			cfg.Aligner.BottomConnection.Align = h
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// Validate reports settings that no aligner or liner can honor.
func (c *Config) Validate() error {
	if err := c.AlignerOptions().Validate(); err != nil {
		return err
	}
	_, err := c.LinerOptions()
	return err
}

// AlignerOptions converts the aligner table to [layout.Options].
func (c *Config) AlignerOptions() layout.Options {
	a := c.Aligner
	return layout.Options{
		ContentAlign:     a.ContentAlign,
		ContentOffset:    a.ContentOffset,
		TopConnection:    layout.Connection(a.TopConnection),
		BottomConnection: layout.Connection(a.BottomConnection),
		ChildrenAlign:    a.ChildrenAlign,
		Gap:              a.Gap,
	}
}

// LinerOptions converts the liner table to [liner.Options], applying glyph
// overrides on top of the named set.
func (c *Config) LinerOptions() (liner.Options, error) {
	glyphs, err := liner.GlyphSet(c.Liner.Glyphs)
	if err != nil {
		return liner.Options{}, err
	}
	names := make([]string, 0, len(c.Liner.Overrides))
	for name := range c.Liner.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := glyphs.Set(name, c.Liner.Overrides[name]); err != nil {
			return liner.Options{}, err
		}
	}

	opts := liner.Options{
		Glyphs:       glyphs,
		TopHeight:    c.Liner.TopHeight,
		BottomHeight: c.Liner.BottomHeight,
		Bracket:      c.Liner.Bracket,
	}
	if err := opts.Validate(); err != nil {
		return liner.Options{}, err
	}
	return opts, nil
}

// PrinterOptions builds the [render.Option] list for this configuration.
// A nil logger keeps the printer's default.
func (c *Config) PrinterOptions(logger *log.Logger) ([]render.Option, error) {
	a, err := layout.New(c.AlignerOptions())
	if err != nil {
		return nil, err
	}
	lo, err := c.LinerOptions()
	if err != nil {
		return nil, err
	}
	l, err := liner.New(lo)
	if err != nil {
		return nil, err
	}
	return []render.Option{
		render.WithAligner(a),
		render.WithLiner(l),
		render.WithPlaceholders(c.Printer.Placeholders),
		render.WithLogger(logger),
	}, nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}
