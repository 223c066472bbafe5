// Package cart is the shopping cart model of the booking site: the lines a
// visitor selected, the totals derived from them and the pricing rule that
// turns trip details into a per-unit fare.
//
// State only changes through Apply, a pure transition over a closed set of
// actions (AddLine, RemoveLine, SetQuantity, UpdateDetails, Clear,
// LoadSnapshot). Persistence is layered on top by the cart store; nothing in
// this package performs I/O.
//
// Key business rules:
//   - a line is keyed by its service id, so adding the same service again
//     increments the quantity instead of creating a second line
//   - repeated adds keep the price computed on the first add
//   - updating a line's details is the only path that re-prices an existing line
//   - a quantity of zero or less removes the line
//   - totalItems and totalPrice are always derived from the lines
package cart
