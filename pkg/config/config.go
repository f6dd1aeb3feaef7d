package config

import "fmt"

const userAgentFormat = "/xrpl-go:%s/"

// Version is the version of the tool, set at build time.
var Version string

// UserAgent returns a user agent string based on the build time environment.
func UserAgent() string {
	return fmt.Sprintf(userAgentFormat, Version)
}
