// Package extra reads locally authored script records from a directory.
//
// Every *.json file in the directory holds one script:
//
//	{"pk": 9001, "title": "Local Script", "author": "me", "characters": ["imp", "washerwoman"]}
//
// Other fields are kept in the record's meta payload. Files are read in lexical
// order, so the result is deterministic for a given directory.
package extra
