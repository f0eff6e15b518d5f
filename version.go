package edc

import (
	"fmt"
	"runtime"
)

// Version information - can be set at build time
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// GetVersionString returns a formatted version string
func GetVersionString() string {
	return fmt.Sprintf("EDC-GO v%s", Version)
}

// GetBinaryInfo returns binary architecture and runtime information
func GetBinaryInfo() string {
	return fmt.Sprintf("Architecture: %s/%s | Go Version: %s", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// GetFullVersionInfo returns detailed version information
func GetFullVersionInfo() string {
	return fmt.Sprintf(`EDC-GO v%s
Error detection and correction codes: VRC, LRC, CRC, checksum, Hamming
Build Time: %s
Git Commit: %s
Architecture: %s/%s
Go Version: %s
`, Version, BuildTime, GitCommit, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
