// Package format names the output formats of list model dumps.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//		return err
//	}
//	fmt.Println(f.Suffix()) // ".yaml"
//
// A format can also be chosen by output file name with [ForPath].
//
// # Related Packages
//
//   - github.com/signadot/listmodel/encode - Encode a model in a format
package format
