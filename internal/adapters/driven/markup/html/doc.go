// Package html parses HTML message fragments into domain trees and renders
// annotated trees back to HTML.
//
// Annotation payloads never become text. They are written as attributes on
// the wrapper element: title carries the summary and data-* attributes carry
// the term title, class, full-text flag and source link. Rendering an
// annotated tree and parsing it again therefore yields the same text content,
// and annotating the parsed result is a no-op.
package html
