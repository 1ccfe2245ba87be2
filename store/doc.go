// Package store holds the immutable base collection of a view.
//
// A Store is created once from an external data source and never mutated;
// all query state lives elsewhere. Replacing the data means building a new
// Store, so a single pipeline pass always observes one consistent snapshot.
package store
