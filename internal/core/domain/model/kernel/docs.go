// Package kernel holds the value objects shared by the cart, catalog, booking
// and quote models: vehicle types with their fare multipliers, weight units,
// the cargo categories offered on the booking form and the session identifier
// that scopes a visitor's cart.
package kernel
