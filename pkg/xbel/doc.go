// Package xbel implements a single-pass streaming filter for
// freedesktop.org recently-used.xbel manifests.
//
// The filter removes bookmark elements whose decoded file:// location
// falls under any of a set of path prefixes, and reproduces every
// retained byte of the document exactly as it appeared in the input:
// attribute order, quoting, entity escaping and the XML declaration are
// never rewritten. Only the removed elements and at most one
// whitespace-only text node after each of them are absent from the
// output.
package xbel
