package version

// Version is the current release of resgen.
var Version = "0.1.0"
