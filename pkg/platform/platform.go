// Package platform maps the running host onto the architecture tokens used by
// the SlackBuilds ecosystem in descriptors and artifact filenames.
package platform

import "runtime"

// Architecture tokens that may appear in an artifact filename.
const (
	ArchNoarch  = "noarch"
	ArchI486    = "i486"
	ArchI586    = "i586"
	ArchI686    = "i686"
	ArchX86_64  = "x86_64"
	ArchARM     = "arm"
	ArchAarch64 = "aarch64"
)

var validArchs = map[string]bool{
	ArchNoarch:  true,
	ArchI486:    true,
	ArchI586:    true,
	ArchI686:    true,
	ArchX86_64:  true,
	ArchARM:     true,
	ArchAarch64: true,
}

// ValidArch reports whether token is a known architecture token.
func ValidArch(token string) bool {
	return validArchs[token]
}

// HostArch returns the architecture token for the running host.
func HostArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return ArchX86_64
	case "386":
		return ArchI586
	case "arm":
		return ArchARM
	case "arm64":
		return ArchAarch64
	default:
		return runtime.GOARCH
	}
}
