// Package toll prices unrolled distance records using configurable rate
// tables: a vehicle-type multiplier table and an ordered time-of-day band
// table.
package toll
