package tsp

// NextPermutation exposes nextPermutation to the external test package.
var NextPermutation = nextPermutation
