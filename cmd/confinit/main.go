// confinit writes a default configuration file to a target path if no file
// exists there yet. The default configuration is read as JSON5 from stdin or
// from the file given with --seed.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	confinit "github.com/twpayne/go-confinit"
)

var config = newConfig()

var rootCmd = &cobra.Command{
	Use:           "confinit target",
	Short:         "Write a default configuration file if none exists",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          config.runRootCmd,
}

func init() {
	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.VarP(&config.format, "format", "f", "file format ("+strings.Join(confinit.FormatNames(), ", ")+"), default from the target's extension")
	persistentFlags.StringVar(&config.keyCase, "key-case", "", "convert map keys (camel, kebab, snake)")
	persistentFlags.StringVar(&config.permStr, "perm", "", "file permissions, octal")
	persistentFlags.BoolVar(&config.atomic, "atomic", false, "write via a temporary file and rename")
	persistentFlags.StringVar(&config.seed, "seed", "", "read the default configuration from this file instead of stdin")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if s := err.Error(); s != "" {
			fmt.Fprintf(os.Stderr, "confinit: %s\n", s)
		}
		os.Exit(1)
	}
}
