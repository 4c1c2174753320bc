package confinit

import (
	"path/filepath"

	xdg "github.com/twpayne/go-xdg/v3"
)

// DefaultConfigFile returns the conventional path of app's configuration file
// in format under bds's configuration home, i.e.
// $XDG_CONFIG_HOME/app/app.<format>.
func DefaultConfigFile(bds *xdg.BaseDirectorySpecification, app string, format Format) string {
	return filepath.Join(bds.ConfigHome, app, app+"."+format.Name())
}
