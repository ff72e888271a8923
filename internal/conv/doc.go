// Package conv provides overflow-checked integer conversions.
//
// Slot counts are plain ints while memory budgets are int64 byte counts.
// Every conversion between the two goes through this package so that an
// absurd request surfaces as an error instead of a wrapped-around size.
package conv
