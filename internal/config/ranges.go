package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/viiv-themes/viiv/internal/palette"
)

// RangeValue is a range bound written as an integer, a decimal string or a
// 0x prefixed hex string.
type RangeValue int

func (v *RangeValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = RangeValue(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("range bound %s is neither a number nor a string", data)
	}
	parsed, err := ParseRangeValue(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (RangeValue) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "integer"},
			{Type: "string", Pattern: `^(0[xX][0-9a-fA-F]+|[0-9]+)$`},
		},
	}
}

func ParseRangeValue(s string) (RangeValue, error) {
	s = strings.TrimSpace(s)
	var (
		n   int64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err = strconv.ParseInt(s[2:], 16, 64)
	} else {
		n, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid range bound %q: %w", s, err)
	}
	return RangeValue(n), nil
}

// Range is half open: [start, end).
type Range []RangeValue

// Valid reports whether the range has exactly two bounds with start < end.
func (r Range) Valid() bool {
	return len(r) == 2 && r[0] < r[1]
}

func (r Range) Start() int { return int(r[0]) }
func (r Range) End() int   { return int(r[1]) }

func (r Range) within(low, high int) bool {
	for _, v := range r {
		if int(v) < low || int(v) > high {
			return false
		}
	}
	return true
}

// NormalizeRange lists the zero padded decimal values of a valid range.
func NormalizeRange(r Range) []string {
	if !r.Valid() {
		return nil
	}
	values := make([]string, 0, r.End()-r.Start())
	for i := r.Start(); i < r.End(); i++ {
		values = append(values, fmt.Sprintf("%02d", i))
	}
	return values
}

func alphaValues(r Range) []string {
	if !r.Valid() {
		return []string{""}
	}
	values := make([]string, 0, r.End()-r.Start())
	for i := r.Start(); i < r.End(); i++ {
		values = append(values, fmt.Sprintf("%02x", i))
	}
	return values
}

var hexDigits = []rune("0123456789abcdefABCDEF")

type ColorSpec struct {
	Hex        string `json:"hex,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	BasicRange Range  `json:"basic_range,omitempty"`
	LightRange Range  `json:"light_range,omitempty"`
	AlphaRange Range  `json:"alpha_range,omitempty"`
}

// WithBasicRange returns a copy using r as the basic range.
func (c ColorSpec) WithBasicRange(r Range) ColorSpec {
	c.BasicRange = append(Range(nil), r...)
	return c
}

// Candidates expands the spec into every color or placeholder it can produce.
// A hex wins over the basic and light ranges, and "#000000" stands in when
// neither yields anything. Alpha suffixes vary fastest.
func (c ColorSpec) Candidates() []string {
	var heads []string
	switch {
	case c.Hex != "":
		heads = []string{c.Hex}
	case c.BasicRange.Valid() && c.LightRange.Valid():
		for _, b := range NormalizeRange(c.BasicRange) {
			for _, l := range NormalizeRange(c.LightRange) {
				heads = append(heads, "C_"+b+"_"+l)
			}
		}
	}
	if len(heads) == 0 {
		heads = []string{"#000000"}
	}

	tails := alphaValues(c.AlphaRange)
	candidates := make([]string, 0, len(heads)*len(tails))
	for _, head := range heads {
		for _, tail := range tails {
			candidates = append(candidates, head+tail)
		}
	}
	return candidates
}

func (c ColorSpec) validate() error {
	if c.Hex != "" && !palette.IsHex(c.Hex) && !(len(c.Hex) == 9 && palette.IsHex(c.Hex[:7]) && lo.Every(hexDigits, []rune(c.Hex[7:]))) {
		return fmt.Errorf("hex %q is not a #rrggbb or #rrggbbaa color", c.Hex)
	}
	if !c.BasicRange.within(0, 100) {
		return fmt.Errorf("basic_range %v is outside [0,100]", c.BasicRange)
	}
	if !c.LightRange.within(0, 100) {
		return fmt.Errorf("light_range %v is outside [0,100]", c.LightRange)
	}
	if !c.AlphaRange.within(0, 256) {
		return fmt.Errorf("alpha_range %v is outside [0,256]", c.AlphaRange)
	}
	return nil
}
