// Package library defines the shared domain model for photo collections.
//
// Every scanner, regardless of backend, reduces its side of the world to the
// same shape: a list of Album records carrying a display name, an item count,
// and a source tag. The matching engine consumes nothing else.
//
// # Records
//
// Album values are built by scanners and validated at the boundary. A record
// that reaches the engine is guaranteed to have a non-empty name, a
// non-negative count, and a known source.
//
// # Error Kinds
//
// The package also defines the error kinds scanners classify their failures
// with (ErrAccess, ErrAuth, ErrTransient, ErrValidation). Callers test them
// with errors.Is; the wrapped message names the failing side.
package library
