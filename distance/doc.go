// Package distance supplies the distance-lookup capability consumed by tsp.
//
// What & Why:
//
//	Matrix is a name-indexed, row-major table of travel costs between ordered
//	pairs of locations. It records which entries were actually provided, so a
//	gap in the data surfaces as a missing pair instead of a silent zero.
//	Matrix implements tsp.Lookup and is safe for concurrent reads.
//
// Sources:
//
//	Document (JSON) describes a precomputed matrix either as a square table
//	(row = origin, as returned by routing services) or as nested
//	{from: {to: d}} pairs. Random builds deterministic synthetic matrices.
//
// Names are standardized (trimmed, whitespace-collapsed, title-cased) before
// they become tsp.Location values; see Normalize.
package distance
