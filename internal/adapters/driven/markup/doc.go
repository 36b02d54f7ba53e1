// Package markup converts between rendered message markup and domain
// document trees.
//
// Subpackages:
//   - html: parses HTML fragments into trees and renders annotated trees
//     back to HTML, carrying annotation payloads as attributes
//   - terminal: renders annotated trees for a terminal, with term
//     highlighting and numbered footnotes
package markup
