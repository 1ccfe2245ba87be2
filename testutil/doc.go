// Package testutil provides fixtures for tabview tests and examples.
//
// This package is intended for use in tests, examples and benchmarks only.
//
//	st := testutil.UsersStore()
//	ids := testutil.IDs(res.Rows)
package testutil
