// Package fakecode rewrites prose into text that looks like a JavaScript
// class: the prose survives as line comments, and each line yields a
// pseudo-statement built from its ideographs.
//
// Output is cosmetic. Nothing here parses or validates the generated code,
// and identifiers are embedded verbatim. Template choice is random, so
// callers that need reproducible output inject a seeded Rand.
package fakecode
