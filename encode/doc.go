// Package encode renders reports about edn identifiers.
//
// A Record describes one checked identifier: its kind, parts and canonical
// text, or the error which made it invalid.
//
//	recs := []encode.Record{encode.Check(":foo/bar"), encode.Check("1x")}
//	err := encode.Encode(recs, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// Text output prints one identifier per line and can be colored with
// EncodeColors(NewColors()).
//
// # Related Packages
//
//   - github.com/signadot/go-edn/format - Output formats
package encode
