// Package pricegrid reconstructs pricing grids from documents that only
// expose positioned text fragments. Tokens are clustered into rows, a
// numeric width header is detected, and the rows that follow are aligned
// into a drop-by-width price matrix.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, pdf/, excelize/).
package pricegrid
