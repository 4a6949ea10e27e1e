// Package wire renders lookup results as the one-line JSON object written to
// standard output.
//
// A Response is an ordered mapping. Keys keep the position of their first
// insertion and the value of their last, so a query naming the same token
// twice produces one entry. Values pass through Coerce on insertion, which
// maps every supported native numeric type onto the small set of types the
// encoder emits (int64, uint64, float64 and slices of them).
package wire
