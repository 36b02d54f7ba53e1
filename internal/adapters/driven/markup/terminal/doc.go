// Package terminal renders annotated document trees as terminal text.
//
// Known terms are highlighted and numbered; their tooltips become a list
// of footnotes after the body. Block elements start new lines. A plain
// renderer produces the same layout without styling, for pipes and files.
package terminal
