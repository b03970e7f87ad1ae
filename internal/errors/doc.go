// Package errors provides structured, coded errors for elattr.
//
// Every error carries a code (e.g. "E201") that maps to a registered
// template with a category, a short message and a longer explanation.
// Callers refine an error with a location, a suggestion or a wrapped cause:
//
//	err := errors.New("E210").
//	    WithLocation("button.json", 3, 12).
//	    WithSuggestion(`use one of "div", "header", "p", "canvas"`)
//
//	fmt.Println(err.Format())
//
// # Categories
//
//   - contract: attribute store misuse (a key read or written as a type
//     other than the one it was first stored with). These are programming
//     errors and are raised with panic, never returned.
//   - descriptor: malformed JSON element descriptors.
//   - config: elattr.json loading and validation.
//   - cli: command-line usage errors.
package errors
