// Package memstore holds in-memory implementations of the repository
// interfaces. They mirror the gorm repositories' contracts (ordering, not
// found handling, insert-if-absent tokens) and back the usecase and HTTP
// tests.
package memstore
