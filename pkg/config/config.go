// Package config loads sheet geometry from TOML files.
//
// A geometry file describes the column widths and row heights of the sheet a
// picture is placed on, plus the device resolution. Every key is optional;
// missing keys keep the values of [Default].
//
//	pixels_per_inch = 96
//
//	[columns]
//	default_width = 9.140625   # characters
//	character_width = 7.0017   # pixels per character
//	max_index = 16384
//
//	[columns.widths]
//	"2" = 20.0                 # column C
//
//	[rows]
//	default_height = 15.0      # points
//	max_index = 1048576
//
//	[rows.heights]
//	"0" = 30.0                 # row 1
//
// Column and row keys are zero-based indices.
package config

import (
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/grid"
	"github.com/matzehuels/sheetanchor/pkg/units"
)

// Config is a sheet geometry.
type Config struct {
	PixelsPerInch float64 `toml:"pixels_per_inch"`
	Columns       Columns `toml:"columns"`
	Rows          Rows    `toml:"rows"`
}

// Columns configures column widths.
type Columns struct {
	DefaultWidth   float64            `toml:"default_width"`
	CharacterWidth float64            `toml:"character_width"`
	MaxIndex       int                `toml:"max_index"`
	Widths         map[string]float64 `toml:"widths,omitempty"`
}

// Rows configures row heights.
type Rows struct {
	DefaultHeight float64            `toml:"default_height"`
	MaxIndex      int                `toml:"max_index"`
	Heights       map[string]float64 `toml:"heights,omitempty"`
}

// Default returns the geometry of a default spreadsheet.
func Default() *Config {
	return &Config{
		PixelsPerInch: units.DefaultPixelsPerInch,
		Columns: Columns{
			DefaultWidth:   units.DefaultColumnWidth,
			CharacterWidth: units.DefaultCharacterWidth,
			MaxIndex:       grid.MaxColumns,
		},
		Rows: Rows{
			DefaultHeight: units.DefaultRowHeight,
			MaxIndex:      grid.MaxRows,
		},
	}
}

// Load reads and validates the geometry file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes a TOML geometry over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode geometry")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every measurement and explicit size.
func (c *Config) Validate() error {
	if err := c.GridOptions().Validate(); err != nil {
		return err
	}
	if _, err := sizes(c.Columns.Widths, c.Columns.MaxIndex, "column width"); err != nil {
		return err
	}
	if _, err := sizes(c.Rows.Heights, c.Rows.MaxIndex, "row height"); err != nil {
		return err
	}
	return nil
}

// GridOptions returns the grid options described by c.
func (c *Config) GridOptions() grid.Options {
	return grid.Options{
		PixelsPerInch:      c.PixelsPerInch,
		DefaultColumnWidth: c.Columns.DefaultWidth,
		CharacterWidth:     c.Columns.CharacterWidth,
		DefaultRowHeight:   c.Rows.DefaultHeight,
		MaxColumns:         c.Columns.MaxIndex,
		MaxRows:            c.Rows.MaxIndex,
	}
}

// Sheet returns the explicit sizes of c as a grid.SizeSource.
func (c *Config) Sheet() (*grid.Sheet, error) {
	widths, err := sizes(c.Columns.Widths, c.Columns.MaxIndex, "column width")
	if err != nil {
		return nil, err
	}
	heights, err := sizes(c.Rows.Heights, c.Rows.MaxIndex, "row height")
	if err != nil {
		return nil, err
	}

	s := grid.NewSheet()
	for i, w := range widths {
		s.SetColumnWidth(i, w)
	}
	for i, h := range heights {
		s.SetRowHeight(i, h)
	}
	return s, nil
}

// Engine builds a grid engine for c.
func (c *Config) Engine() (*grid.Engine, error) {
	sheet, err := c.Sheet()
	if err != nil {
		return nil, err
	}
	return grid.NewEngine(sheet, c.GridOptions())
}

// SetColumnWidth records an explicit column width in characters.
func (c *Config) SetColumnWidth(index int, chars float64) {
	if c.Columns.Widths == nil {
		c.Columns.Widths = make(map[string]float64)
	}
	c.Columns.Widths[strconv.Itoa(index)] = chars
}

// SetRowHeight records an explicit row height in points.
func (c *Config) SetRowHeight(index int, points float64) {
	if c.Rows.Heights == nil {
		c.Rows.Heights = make(map[string]float64)
	}
	c.Rows.Heights[strconv.Itoa(index)] = points
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode geometry")
	}
	return nil
}

// sizes parses explicit size entries keyed by index.
func sizes(m map[string]float64, limit int, what string) (map[int]float64, error) {
	out := make(map[int]float64, len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		i, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || i < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s key %q is not a zero-based index", what, k)
		}
		if limit > 0 && i >= limit {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s index %d is beyond the limit %d", what, i, limit)
		}
		v := m[k]
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s %d must be a positive number, got %v", what, i, v)
		}
		out[i] = v
	}
	return out, nil
}
