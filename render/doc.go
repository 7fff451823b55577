// Package render converts a core.Graph to Graphviz DOT and, via the
// embedded Graphviz runtime, to SVG. A vertex sequence (typically the
// longest-path search result) can be highlighted on top of the base graph.
//
// ToDOT is pure string assembly and always succeeds; RenderSVG runs the
// Graphviz layout engine and can fail on malformed DOT, which ToDOT never
// produces.
package render
