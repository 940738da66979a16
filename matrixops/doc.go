// Package matrixops contains square-matrix transformations.
package matrixops
