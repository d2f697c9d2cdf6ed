// Package collatz computes step counts of the Collatz (3n+1) sequence.
//
// Starting from a positive integer, each step halves an even value and maps an
// odd value v to 3v+1. Length reports how many steps it takes to reach 1.
//
// All arithmetic is on uint64 and wraps on overflow, exactly as fixed-width
// unsigned arithmetic does. Inputs near the top of the range may therefore
// follow a wrapped trajectory rather than the mathematical one.
//
// The core files of this package use ONLY the Go standard library. Every
// function is pure and safe for concurrent use.
package collatz
