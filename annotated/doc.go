// Package annotated implements strings decorated with byte-range annotations.
//
// Annotations are half-open byte ranges [Start, End) into the owning string.
// Edits made through Text.Replace keep every annotation inside the string
// bounds, so highlight results survive the substitutions done while a line is
// cut down to its visible columns.
package annotated
