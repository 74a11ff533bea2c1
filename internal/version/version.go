// internal/version/version.go
package version

// Version is overridable at build time via -ldflags "-X rtd/internal/version.Version=...".
var Version = "0.2.0"
