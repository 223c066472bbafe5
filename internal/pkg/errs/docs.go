// Package errs provides the typed errors shared across the booking service.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct carrying the offending
// parameter and an optional cause. Unwrap returns the sentinel so callers can
// classify failures with errors.Is, which is how the HTTP adapter picks status
// codes.
package errs
