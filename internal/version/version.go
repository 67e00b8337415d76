package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X .../internal/version.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Package is the module name reported by Get.
const Package = "dendra-shell"

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

// buildSetting returns the value of a vcs.* key recorded by the Go
// toolchain, or "" when the binary carries no build info.
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if key == "main.version" {
		if info.Main.Version == "(devel)" {
			return ""
		}
		return info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func pick(injected, unset, key, fallback string) string {
	if injected != unset && injected != "" {
		return injected
	}
	if v := buildSetting(key); v != "" {
		return v
	}
	return fallback
}

// Get collects version information, preferring values injected at link
// time over build info.
func Get() Info {
	return Info{
		Version: pick(Version, "dev", "main.version", "development"),
		Commit:  pick(Commit, "unknown", "vcs.revision", "unknown"),
		Date:    pick(Date, "unknown", "vcs.time", "unknown"),
		Package: Package,
	}
}

// String formats i as "version (commit, built date)", dropping the parts
// that are unknown.
func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	short := i.Commit[:7]
	if i.Date == "unknown" {
		return fmt.Sprintf("%s (%s)", i.Version, short)
	}
	return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
}

// Full returns Get().String(); cobra shows it for --version.
func Full() string {
	return Get().String()
}
