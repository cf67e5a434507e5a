package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// document mirrors the config.json layout for schema generation. Areas other
// than default and token are open properties holding group lists.
type document struct {
	Options Options       `json:"options"`
	Themes  []ThemeConfig `json:"themes"`
	Default []GroupConfig `json:"default" jsonschema:"required"`
	Token   []GroupConfig `json:"token" jsonschema:"required"`
}

func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&document{})
	schema.Title = "viiv generator config"
	return schema
}

func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "    ")
}
