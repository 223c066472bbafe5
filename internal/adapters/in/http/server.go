package http

import (
	"net/http"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the cart, checkout and
// quote use cases.
type Server struct {
	// Command handlers
	addLineHandler           commands.AddLineCommandHandler
	removeLineHandler        commands.RemoveLineCommandHandler
	setQuantityHandler       commands.SetQuantityCommandHandler
	updateLineDetailsHandler commands.UpdateLineDetailsCommandHandler
	clearCartHandler         commands.ClearCartCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	submitQuoteHandler       commands.SubmitQuoteCommandHandler

	// Query handlers
	getCartHandler        queries.GetCartQueryHandler
	getCatalogHandler     queries.GetCatalogQueryHandler
	estimatePriceHandler  queries.EstimatePriceQueryHandler
	getLastBookingHandler queries.GetLastBookingQueryHandler
	getLatestQuoteHandler queries.GetLatestQuoteQueryHandler
}

// Handlers groups the use case handlers the server depends on.
type Handlers struct {
	AddLine           commands.AddLineCommandHandler
	RemoveLine        commands.RemoveLineCommandHandler
	SetQuantity       commands.SetQuantityCommandHandler
	UpdateLineDetails commands.UpdateLineDetailsCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	Checkout          commands.CheckoutCommandHandler
	SubmitQuote       commands.SubmitQuoteCommandHandler

	GetCart        queries.GetCartQueryHandler
	GetCatalog     queries.GetCatalogQueryHandler
	EstimatePrice  queries.EstimatePriceQueryHandler
	GetLastBooking queries.GetLastBookingQueryHandler
	GetLatestQuote queries.GetLatestQuoteQueryHandler
}

// NewServer creates the HTTP server from its use case handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		addLineHandler:           h.AddLine,
		removeLineHandler:        h.RemoveLine,
		setQuantityHandler:       h.SetQuantity,
		updateLineDetailsHandler: h.UpdateLineDetails,
		clearCartHandler:         h.ClearCart,
		checkoutHandler:          h.Checkout,
		submitQuoteHandler:       h.SubmitQuote,
		getCartHandler:           h.GetCart,
		getCatalogHandler:        h.GetCatalog,
		estimatePriceHandler:     h.EstimatePrice,
		getLastBookingHandler:    h.GetLastBooking,
		getLatestQuoteHandler:    h.GetLatestQuote,
	}
}

// Register mounts the generated routes on e. The given middleware runs before
// session resolution on every API route.
func (s *Server) Register(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	api := e.Group("", append(middleware, SessionMiddleware())...)
	servers.RegisterHandlers(api, s)
}

// ListServices handles GET /api/v1/services.
func (s *Server) ListServices(c echo.Context) error {
	list, err := s.getCatalogHandler.Handle(c.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toServices(list))
}

// EstimatePrice handles POST /api/v1/estimates.
func (s *Server) EstimatePrice(c echo.Context) error {
	var req servers.EstimatePriceJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	query, err := queries.NewEstimatePriceQuery(req.ServiceId, estimateToDomain(req))
	if err != nil {
		return err
	}

	estimate, err := s.estimatePriceHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEstimate(estimate))
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(sessionID(c))
	if err != nil {
		return err
	}

	state, err := s.getCartHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(state))
}

// AddLine handles POST /api/v1/cart/lines.
func (s *Server) AddLine(c echo.Context) error {
	var req servers.AddLineJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddLineCommand(sessionID(c), req.ServiceId, nil)
	if req.Details != nil {
		details := bookingDetailsToDomain(*req.Details)
		cmd, err = commands.NewAddLineCommand(sessionID(c), req.ServiceId, &details)
	}
	if err != nil {
		return err
	}

	state, err := s.addLineHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(state))
}

// UpdateLineDetails handles PATCH /api/v1/cart/lines/:id.
func (s *Server) UpdateLineDetails(c echo.Context, id servers.LineID) error {
	var req servers.UpdateLineDetailsJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLineDetailsCommand(sessionID(c), id, lineDetailsToDomain(req))
	if err != nil {
		return err
	}

	state, err := s.updateLineDetailsHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(state))
}

// SetQuantity handles PUT /api/v1/cart/lines/:id/quantity.
func (s *Server) SetQuantity(c echo.Context, id servers.LineID) error {
	var req servers.SetQuantityJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetQuantityCommand(sessionID(c), id, req.Quantity)
	if err != nil {
		return err
	}

	state, err := s.setQuantityHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(state))
}

// RemoveLine handles DELETE /api/v1/cart/lines/:id.
func (s *Server) RemoveLine(c echo.Context, id servers.LineID) error {
	cmd, err := commands.NewRemoveLineCommand(sessionID(c), id)
	if err != nil {
		return err
	}

	state, err := s.removeLineHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(state))
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(sessionID(c))
	if err != nil {
		return err
	}

	state, err := s.clearCartHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(state))
}

// Checkout handles POST /api/v1/checkout.
func (s *Server) Checkout(c echo.Context) error {
	var req servers.CheckoutJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, payment := checkoutToDomain(req)
	cmd, err := commands.NewCheckoutCommand(sessionID(c), address, payment)
	if err != nil {
		return err
	}

	receipt, err := s.checkoutHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBooking(receipt))
}

// GetLastBooking handles GET /api/v1/bookings/last.
func (s *Server) GetLastBooking(c echo.Context) error {
	query, err := queries.NewGetLastBookingQuery(sessionID(c))
	if err != nil {
		return err
	}

	receipt, err := s.getLastBookingHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBooking(receipt))
}

// SubmitQuote handles POST /api/v1/quotes.
func (s *Server) SubmitQuote(c echo.Context) error {
	var req servers.SubmitQuoteJSONRequestBody
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitQuoteCommand(sessionID(c), quoteToDomain(req), deref(req.QuoteId))
	if err != nil {
		return err
	}

	q, err := s.submitQuoteHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toQuote(q))
}

// GetLatestQuote handles GET /api/v1/quotes/latest.
func (s *Server) GetLatestQuote(c echo.Context) error {
	query, err := queries.NewGetLatestQuoteQuery(sessionID(c))
	if err != nil {
		return err
	}

	q, err := s.getLatestQuoteHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuote(q))
}

func bindAndValidate(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.Validate(dest)
}
