package version

// Version is overridable at build time via -ldflags.
var Version = "0.1.0"
