// Package dataset reads the CSV dataset shapes consumed by the tollkit
// transformations: location rows (id, latitude, longitude), unrolled
// distance rows (id_start, id_end, distance), and timestamped pair rows
// (id, id_2, timestamp). Column order is free; headers are matched
// case-insensitively.
package dataset
