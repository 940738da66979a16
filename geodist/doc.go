// Package geodist builds and reshapes great-circle distance tables for
// location datasets.
//
// The input is an ordered list of locations (id + lon/lat point). From it the
// package can:
//
//   - build a square id-indexed distance matrix in meters (BuildMatrix)
//   - unroll the matrix into flat (id_start, id_end, distance) records
//     (Unroll)
//   - find ids whose mean outbound distance falls within ±10% of a reference
//     id's mean (FindIDsWithinThreshold)
//
// Coordinates use orb.Point (lon, lat order). Distances are haversine on a
// 6371 km sphere.
package geodist
