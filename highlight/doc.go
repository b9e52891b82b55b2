// Package highlight turns buffer lines into annotations for rendering.
//
// A SyntaxHighlighter classifies the tokens of one line at a time and carries
// multi-line state (block comments, strings) to the next line. A
// SearchHighlighter marks the occurrences of a query. Highlighter layers the
// search marks on top of the syntax marks.
package highlight
