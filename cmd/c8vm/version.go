package main

import (
	"fmt"

	"github.com/retroenv/retrogolib/buildinfo"
)

// Various version related constants.
const (
	AppVendor  = "hexaflex"
	AppName    = "c8vm"
	AppVersion = "v0.1.0"
)

// Set by the linker.
var (
	commit = ""
	date   = ""
)

// Version returns program version information.
func Version() string {
	return fmt.Sprintf("%s %s %s", AppVendor, AppName, buildinfo.Version(AppVersion, commit, date))
}
