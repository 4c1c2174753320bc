package confinit

import (
	"fmt"
	"sort"
	"strings"
)

// A Format is a serialization format.
type Format interface {
	Marshal(data interface{}) ([]byte, error)
	Name() string
	Unmarshal(data []byte, value interface{}) error
}

// Formats is a map of all registered Formats by name. Each format registers
// itself in an init function, so the contents of Formats are fixed by the set
// of format files compiled in.
var Formats = make(map[string]Format)

// ParseFormat returns the Format with the given name. The name is matched
// case-insensitively and may carry a leading dot, so file extensions like
// ".toml" work directly.
func ParseFormat(name string) (Format, error) {
	format, ok := Formats[strings.ToLower(strings.TrimPrefix(name, "."))]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	return format, nil
}

// FormatNames returns the sorted names of all registered Formats.
func FormatNames() []string {
	names := make([]string, 0, len(Formats))
	for name := range Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
