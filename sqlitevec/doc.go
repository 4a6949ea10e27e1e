// Package sqlitevec reads and writes vector tables stored in SQLite.
//
// A table holds one row per token:
//
//	CREATE TABLE vectors (token TEXT PRIMARY KEY, embedding BLOB NOT NULL)
//
// embedding is a little-endian sequence of IEEE 754 float32 values with no
// length prefix. Rows are read in rowid order, so a limit keeps the rows that
// were inserted first.
//
// The pure-Go modernc.org/sqlite driver is registered on import.
package sqlitevec
