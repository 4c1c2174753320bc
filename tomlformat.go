package confinit

import (
	"github.com/pelletier/go-toml"
)

type tomlFormat struct{}

// TOMLFormat is the TOML serialization format.
var TOMLFormat tomlFormat

func (tomlFormat) Name() string {
	return "toml"
}

func (tomlFormat) Marshal(data interface{}) ([]byte, error) {
	return toml.Marshal(data)
}

func (tomlFormat) Unmarshal(data []byte, value interface{}) error {
	return toml.Unmarshal(data, value)
}

func init() {
	Formats[TOMLFormat.Name()] = TOMLFormat
}
