package smartcode

// Version is the version of SmartCode. This variable is overridden at build
// time using ldflags.
var Version = "0.0.0-dev"
