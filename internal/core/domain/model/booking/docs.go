// Package booking models a confirmed checkout: the receipt a visitor gets when
// the cart is turned into a booking.
//
// The package includes:
//   - Address: the delivery contact, validated like the checkout form
//   - Payment: the chosen payment method; card and bank numbers are checked for
//     presence and then discarded, nothing is charged
//   - Booking: the receipt, carrying an IYE-prefixed order id and a frozen copy
//     of the cart lines and totals
package booking
