package main

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	vfs "github.com/twpayne/go-vfs"

	confinit "github.com/twpayne/go-confinit"
)

// A Config holds the parsed command line.
type Config struct {
	atomic  bool
	format  formatFlag
	keyCase string
	permStr string
	seed    string

	fs    vfs.FS
	stdin io.Reader
}

// A configOption sets an option on a Config.
type configOption func(*Config)

func newConfig(options ...configOption) *Config {
	c := &Config{
		fs:    vfs.HostOSFS,
		stdin: os.Stdin,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Config) runRootCmd(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format := c.format.format
	if format == nil {
		var err error
		if format, err = confinit.ParseFormat(filepath.Ext(targetPath)); err != nil {
			return err
		}
	}

	data, err := c.readSeed()
	if err != nil {
		return err
	}

	var options []confinit.Option
	if c.atomic {
		options = append(options, confinit.WithAtomicWrite())
	}
	if c.keyCase != "" {
		keyCase, err := confinit.ParseKeyCase(c.keyCase)
		if err != nil {
			return err
		}
		options = append(options, confinit.WithKeyCase(keyCase))
	}
	if c.permStr != "" {
		perm, err := strconv.ParseUint(c.permStr, 8, 32)
		if err != nil {
			return err
		}
		options = append(options, confinit.WithPerm(os.FileMode(perm)))
	}

	return confinit.WriteDefault(c.fs, targetPath, data, format, options...)
}

// readSeed reads and decodes the default configuration from the --seed file,
// or from stdin if no seed file was given. Empty input means an empty
// configuration.
func (c *Config) readSeed() (interface{}, error) {
	var contents []byte
	var err error
	if c.seed != "" {
		contents, err = c.fs.ReadFile(c.seed)
	} else {
		contents, err = ioutil.ReadAll(c.stdin)
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(contents)) == 0 {
		return map[string]interface{}{}, nil
	}
	var data interface{}
	if err := confinit.JSON5Format.Unmarshal(contents, &data); err != nil {
		return nil, err
	}
	return data, nil
}
