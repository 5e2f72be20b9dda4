// internal/version/version.go
package version

// Version is the colorseq release string.
const Version = "0.8.1"
