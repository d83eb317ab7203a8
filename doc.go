// Package docfrag builds pre-styled DOCX fragments – formatted paragraphs,
// banner tables, two-column info tables, page-section layouts – on top of
// unioffice.  Each builder takes plain arguments (text, "RRGGBB" colors, font
// names, paddings, page dimensions), creates the fragment on the supplied
// document and returns the constructed object so callers can keep composing
// with the unioffice API directly.
//
// All colors are 6-character RGB hex strings without the leading "#"
// (e.g. "FF0000" for red).  Font sizes accept numbers, numeric strings, or
// the standard Chinese type-size names (初号 … 八号).
package docfrag
