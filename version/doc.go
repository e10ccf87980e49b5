// Package version provides version information and build metadata for pkgtool.
//
// Version, Commit and Date can be injected at build time via -ldflags; when
// they are left at their defaults the package falls back to the metadata
// embedded by the Go toolchain through debug.ReadBuildInfo. This keeps
// version reporting consistent across development, CI and release builds.
package version
