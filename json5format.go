package confinit

import (
	"encoding/json"

	"github.com/flynn/json5"
)

type json5Format struct{}

// JSON5Format is the JSON5 serialization format. Marshal emits plain JSON,
// which is valid JSON5; Unmarshal accepts the full JSON5 syntax.
var JSON5Format json5Format

func (json5Format) Name() string {
	return "json5"
}

func (json5Format) Marshal(data interface{}) ([]byte, error) {
	contents, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(contents, '\n'), nil
}

func (json5Format) Unmarshal(data []byte, value interface{}) error {
	return json5.Unmarshal(data, value)
}

func init() {
	Formats[JSON5Format.Name()] = JSON5Format
}
