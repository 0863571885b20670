// Package testutil provides testing utilities for picdesk.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for mutation sequences, source name
// generators and tiny encoded images for scanner and materializer tests.
//
// # Random Mutations
//
//	rng := testutil.NewRNG(seed)
//	section := rng.Intn(ix.SectionCount())
//
// # Image Fixtures
//
//	data := testutil.PNG(4, 3) // 4x3 pixel PNG
package testutil
