// Package render presents action chains.
//
// The wire envelope is what clients consume, but it is unreadable by eye: the
// chain sits inside it as escaped JSON text. Renderers decode that text and
// show the chain as indented JSON, a tree, a markdown outline or a YAML
// document that can be rebuilt with the document package.
//
// Styles are semantic names mapped to lipgloss styles in styles.yaml, with
// adaptive colors for light and dark terminals.
package render
