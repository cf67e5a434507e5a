// Package theme reads, assigns and renders VS Code color theme templates.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/viiv-themes/viiv/internal/fsys"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	keyName        = "name"
	keyType        = "type"
	keyColors      = "colors"
	keyTokenColors = "tokenColors"
)

// Scope is a token scope, written in the template either as a string or a
// list of strings. The original form is kept on output.
type Scope struct {
	Values []string
	single bool
}

func NewScope(values ...string) Scope {
	return Scope{Values: values, single: len(values) == 1}
}

// First is the scope used for matching.
func (s Scope) First() string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[0]
}

func (s *Scope) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.Values = []string{single}
		s.single = true
		return nil
	}
	s.single = false
	return json.Unmarshal(data, &s.Values)
}

func (s Scope) MarshalJSON() ([]byte, error) {
	if s.single && len(s.Values) == 1 {
		return json.Marshal(s.Values[0])
	}
	if s.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Values)
}

type TokenSetting struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

type TokenColor struct {
	Name     string       `json:"name,omitempty"`
	Scope    Scope        `json:"scope"`
	Settings TokenSetting `json:"settings"`
}

// Document is a theme template or a rendered theme. Top-level keys keep their
// order; colors and tokenColors are decoded, everything else is carried as is.
type Document struct {
	fields      *orderedmap.OrderedMap[string, json.RawMessage]
	Colors      *orderedmap.OrderedMap[string, string]
	TokenColors []TokenColor
}

func NewDocument() *Document {
	return &Document{
		fields: orderedmap.New[string, json.RawMessage](),
		Colors: orderedmap.New[string, string](),
	}
}

func Parse(data []byte) (*Document, error) {
	d := &Document{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, err
	}
	return d, nil
}

func Load(path string) (*Document, error) {
	data, err := fsys.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	d.fields = orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, d.fields); err != nil {
		return err
	}

	d.Colors = orderedmap.New[string, string]()
	if raw, ok := d.fields.Get(keyColors); ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, d.Colors); err != nil {
			return fmt.Errorf("colors: %w", err)
		}
	}

	d.TokenColors = nil
	if raw, ok := d.fields.Get(keyTokenColors); ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &d.TokenColors); err != nil {
			return fmt.Errorf("tokenColors: %w", err)
		}
	}
	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	tokenColors := d.TokenColors
	if tokenColors == nil {
		tokenColors = []TokenColor{}
	}

	out := orderedmap.New[string, any]()
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		switch pair.Key {
		case keyColors:
			out.Set(pair.Key, d.Colors)
		case keyTokenColors:
			out.Set(pair.Key, tokenColors)
		default:
			out.Set(pair.Key, pair.Value)
		}
	}
	if _, ok := out.Get(keyColors); !ok {
		out.Set(keyColors, d.Colors)
	}
	if _, ok := out.Get(keyTokenColors); !ok {
		out.Set(keyTokenColors, tokenColors)
	}
	return json.Marshal(out)
}

// Bytes encodes the document with four space indentation and a trailing newline.
func (d *Document) Bytes() ([]byte, error) {
	compact, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "    "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return fsys.WriteFile(path, data)
}

// Clone is a deep copy.
func (d *Document) Clone() *Document {
	c := &Document{
		fields: orderedmap.New[string, json.RawMessage](),
		Colors: orderedmap.New[string, string](),
	}
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		c.fields.Set(pair.Key, append(json.RawMessage(nil), pair.Value...))
	}
	for pair := d.Colors.Oldest(); pair != nil; pair = pair.Next() {
		c.Colors.Set(pair.Key, pair.Value)
	}
	if d.TokenColors != nil {
		c.TokenColors = make([]TokenColor, len(d.TokenColors))
		for i, tc := range d.TokenColors {
			tc.Scope.Values = append([]string(nil), tc.Scope.Values...)
			c.TokenColors[i] = tc
		}
	}
	return c
}

func (d *Document) stringField(key string) string {
	raw, ok := d.fields.Get(key)
	if !ok || len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (d *Document) setStringField(key, value string) {
	raw, _ := json.Marshal(value)
	d.fields.Set(key, raw)
}

func (d *Document) Name() string { return d.stringField(keyName) }

func (d *Document) SetName(name string) { d.setStringField(keyName, name) }

func (d *Document) Type() string { return d.stringField(keyType) }

func (d *Document) SetType(t string) { d.setStringField(keyType, t) }

// Set stores a top-level field other than colors and tokenColors.
func (d *Document) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	d.fields.Set(key, raw)
	return nil
}

// Properties lists the color property names in document order.
func (d *Document) Properties() []string {
	names := make([]string, 0, d.Colors.Len())
	for pair := d.Colors.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}
