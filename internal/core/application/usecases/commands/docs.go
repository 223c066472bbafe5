// Package commands contains the operations that change a visitor's state: the
// cart mutations, checkout, quote submission and storage maintenance.
//
// Every command is built through its constructor, which validates the input,
// and is executed by a handler. Session-scoped handlers bracket their work
// with a ports.CartSession:
//
//	session := factory.Create(sessionID)
//	if err := session.Begin(ctx); err != nil {
//	    return err
//	}
//	defer session.End(ctx)
//
// Cart handlers return the resulting cart so callers can render it without a
// second round trip.
package commands
