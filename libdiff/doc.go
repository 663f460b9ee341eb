// Package libdiff computes line diffs between list model dumps.
//
// # Usage
//
//	d := libdiff.Trees(decoded, built)
//	if !d.Equal() {
//	    fmt.Print(d)
//	}
//
// # Related Packages
//
//   - github.com/signadot/listmodel/encode - Text dumps being diffed
package libdiff
