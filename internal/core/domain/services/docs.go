// Package services holds domain services that span several models.
//
// BookingEstimator attaches trip details to a catalogue service and prices the
// result with the cart's pricing rule, so the estimate shown on the booking
// form is exactly what the cart charges once the line is added.
package services
