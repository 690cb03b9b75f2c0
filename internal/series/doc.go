// Package series holds the rolling per-tick throughput window and the
// statistics computed over it.
//
// A Buffer always contains exactly Cap() samples. The newest sample sits at
// the last index and the oldest at index 0, which maps directly onto graph
// columns: the rightmost column is "now". Growing a buffer pads on the left
// with zeros so recent history stays pinned to the right edge.
package series
