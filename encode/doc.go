// Package encode renders list model trees.
//
// # Usage
//
//	// Dump a decoded tree as indented text
//	err := encode.Encode(root, os.Stdout)
//
//	// Encode the items of a model as YAML, with color
//	err := encode.EncodeModel(m, os.Stdout,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// The text format shows the tree as it is stored: positional values by
// index, then properties by name, with array-shaped nodes marked by their
// length. The YAML and JSON formats show the items as the mutation API
// accepts them, so their output can be fed back through Append.
//
// # Related Packages
//
//   - github.com/signadot/listmodel/format - Output formats
//   - github.com/signadot/listmodel/model - Trees and models
package encode
