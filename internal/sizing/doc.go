// Package sizing computes buffer sizes and resize thresholds for
// power-of-two open-addressing tables.
package sizing
