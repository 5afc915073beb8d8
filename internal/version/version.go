package version

// Version is set at build time using -ldflags.
var Version = "dev"
