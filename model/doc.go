// Package model holds the two immutable lookup structures the oracle serves
// from: a token→vector table and a token→count table with its aggregates.
//
// Both are built once, by the loader, and never change afterwards. Nothing in
// this package mutates a model after construction, so a model may be shared
// by any number of readers without locking.
package model
