package main

import (
	"fmt"
	"strconv"
)

// set with -ldflags "-X main.gitSHA1=... -X main.gitDirty=1 -X main.buildDate=..."
var (
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildDate string = "unknown"
)

const baseVersion = "0.1.0"

// Version adds the git commit and working tree status when available.
func Version() string {
	version := baseVersion
	if sha1Int, err := strconv.ParseUint(gitSHA1, 16, 64); err == nil && sha1Int != 0 {
		version = fmt.Sprintf("%s (git:%s", version, gitSHA1)
		if dirtyInt, err := strconv.ParseInt(gitDirty, 10, 64); err == nil && dirtyInt != 0 {
			version += "-dirty"
		}
		version += ")"
	}
	if buildDate != "unknown" {
		version += " built " + buildDate
	}
	return version
}
