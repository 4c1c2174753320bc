package main

import (
	confinit "github.com/twpayne/go-confinit"
)

// A formatFlag is a confinit.Format that can be set from the command line.
// *formatFlag implements the github.com/spf13/pflag.Value interface.
type formatFlag struct {
	format confinit.Format
}

// Set implements github.com/spf13/pflag.Value.Set.
func (f *formatFlag) Set(s string) error {
	format, err := confinit.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *formatFlag) String() string {
	if f.format == nil {
		return ""
	}
	return f.format.Name()
}

// Type implements github.com/spf13/pflag.Value.Type.
func (f *formatFlag) Type() string {
	return "format"
}
