// Package buffer implements the document model: grapheme-aware lines and an
// ordered, file-backed collection of them.
//
// Positions are 0-based (Line, Grapheme) pairs. Grapheme indices count
// extended grapheme clusters, not runes or bytes. Display columns count
// terminal cells, where every cluster occupies one or two cells.
package buffer
