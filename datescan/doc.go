// Package datescan extracts calendar dates from free text and normalizes
// them to yyyy-mm-dd.
package datescan
