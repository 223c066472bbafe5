/*
Package cartstore holds the authoritative cart of one session.

A Store keeps the current cart.State in memory, routes every mutation through
cart.Apply and writes the resulting snapshot to a ports.KeyValueStore under
StorageKey. Persistence is best effort: failures are logged and counted but
never surface to callers, so the cart keeps working on a broken backend.

Hydrate reads the saved snapshot once, before the first mutation. Only a
non-empty, well-formed snapshot replaces the initial empty cart.
*/
package cartstore
