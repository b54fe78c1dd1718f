package phenodb

// Version and Build are set by ldflags during release builds.
var (
	Version = "v0.1.0"
	Build   = "n/a"
)
