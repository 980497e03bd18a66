// Package format names the output formats of identifier reports.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml") // or "y"
//
// # Related Packages
//
//   - github.com/signadot/go-edn/encode - Encode reports in a format
package format
