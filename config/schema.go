package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id of the generated schema.
const SchemaID = "https://github.com/randalmurphal/tokenmaster/config.schema.json"

// DurationPattern matches the duration strings Load accepts, such as "10s"
// or "1m30s".
const DurationPattern = `^(0|([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+)$`

var durationType = reflect.TypeOf(time.Duration(0))

// mapType describes time.Duration as a duration string instead of an integer.
func mapType(t reflect.Type) *jsonschema.Schema {
	if t == durationType {
		return &jsonschema.Schema{
			Type:     "string",
			Pattern:  DurationPattern,
			Examples: []any{"10s", "600ms"},
		}
	}
	return nil
}

// Schema returns the JSON Schema describing File, indented for editors.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "json",
		DoNotReference: true,
		Mapper:         mapType,
	}
	s := r.Reflect(&File{})
	s.ID = SchemaID
	s.Title = "tokenmaster configuration"

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return out, nil
}
