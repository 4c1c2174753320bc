package confinit

import (
	"gopkg.in/yaml.v2"
)

type yamlFormat struct{}

// YAMLFormat is the YAML serialization format.
var YAMLFormat yamlFormat

func (yamlFormat) Name() string {
	return "yaml"
}

func (yamlFormat) Marshal(data interface{}) ([]byte, error) {
	return yaml.Marshal(data)
}

func (yamlFormat) Unmarshal(data []byte, value interface{}) error {
	return yaml.Unmarshal(data, value)
}

func init() {
	Formats[YAMLFormat.Name()] = YAMLFormat
}
