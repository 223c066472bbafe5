package commands

import (
	"context"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/catalog"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"
)

// AddLineCommandHandler resolves the service in the catalogue and adds it to
// the session's cart. Adding a service already in the cart raises its quantity.
type AddLineCommandHandler struct {
	factory   ports.CartSessionFactory
	estimator services.BookingEstimator
}

// NewAddLineCommandHandler creates the handler with the default estimator.
//
// Example:
//
//	factory := session.NewFactory(memorykv.NewRepository(), logger, nil)
//	handler := NewAddLineCommandHandler(factory)
//
//	cmd, _ := NewAddLineCommand(sessionID, "vehicle-hire", nil)
//	state, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(state.TotalPrice()) // 1212
func NewAddLineCommandHandler(factory ports.CartSessionFactory) AddLineCommandHandler {
	return AddLineCommandHandler{
		factory:   factory,
		estimator: services.NewBookingEstimator(),
	}
}

// Handle returns errs.ErrObjectNotFound for a service missing from the
// catalogue. Otherwise it returns the cart after the addition.
func (h AddLineCommandHandler) Handle(ctx context.Context, cmd AddLineCommand) (cart.State, error) {
	if err := cmd.Validate(); err != nil {
		return cart.State{}, err
	}

	service, ok := catalog.Find(cmd.ServiceID())
	if !ok {
		return cart.State{}, errs.NewObjectNotFoundError("service", cmd.ServiceID())
	}

	candidate := service.Candidate()
	if details := cmd.Details(); details != nil {
		candidate = h.estimator.Candidate(service, *details)
	}

	session := h.factory.Create(cmd.SessionID())
	if err := session.Begin(ctx); err != nil {
		return cart.State{}, err
	}
	defer session.End(ctx)

	store := session.CartStore()
	store.AddLine(ctx, candidate)
	return store.Snapshot(), nil
}
