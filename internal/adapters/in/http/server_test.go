package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "booking/internal/adapters/in/http"
	"booking/internal/adapters/out/storage/memorykv"
	"booking/internal/adapters/out/storage/session"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/services"
	"booking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkoutBody = `{
	"address": {
		"fullName": "Kavya Raman",
		"phone": "9876543210",
		"email": "kavya@example.com",
		"address": "12 Anna Salai",
		"city": "Chennai",
		"pincode": "600002"
	},
	"payment": {"method": "upi"}
}`

const quoteBody = `{
	"name": "Arun Kumar",
	"email": "arun@example.com",
	"phone": "9123456780",
	"serviceType": "custom-solutions",
	"vehicleType": "container",
	"pickupLocation": "Coimbatore",
	"deliveryLocation": "Tuticorin Port",
	"pickupDate": "2026-11-02",
	"cargoType": "machinery",
	"weight": "12 tons"
}`

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	factory := session.NewFactory(memorykv.NewRepository(), slog.Default(), nil)
	server := api.NewServer(api.Handlers{
		AddLine:           commands.NewAddLineCommandHandler(factory),
		RemoveLine:        commands.NewRemoveLineCommandHandler(factory),
		SetQuantity:       commands.NewSetQuantityCommandHandler(factory),
		UpdateLineDetails: commands.NewUpdateLineDetailsCommandHandler(factory),
		ClearCart:         commands.NewClearCartCommandHandler(factory),
		Checkout:          commands.NewCheckoutCommandHandler(factory),
		SubmitQuote:       commands.NewSubmitQuoteCommandHandler(factory),
		GetCart:           queries.NewGetCartQueryHandler(factory),
		GetCatalog:        queries.NewGetCatalogQueryHandler(),
		EstimatePrice:     queries.NewEstimatePriceQueryHandler(services.NewBookingEstimator()),
		GetLastBooking:    queries.NewGetLastBookingQueryHandler(factory),
		GetLatestQuote:    queries.NewGetLatestQuoteQueryHandler(factory),
	})

	doc, err := api.LoadOpenAPI(t.Context())
	require.NoError(t, err)
	openAPIMiddleware, err := api.OpenAPIValidator(doc)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = api.NewRequestValidator()
	e.HTTPErrorHandler = api.NewErrorHandler(slog.Default())
	server.Register(e, openAPIMiddleware)
	return e
}

func do(e *echo.Echo, method, target, sessionID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sessionID != "" {
		req.Header.Set(api.SessionHeader, sessionID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func Test_ListServices(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/api/v1/services", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]servers.Service](t, rec)
	require.Len(t, list, 4)
	assert.Equal(t, "cargo-transport", list[0].Id)
}

func Test_AddLineIssuesSessionAndMergesRepeatedAdds(t *testing.T) {
	e := newTestEcho(t)

	first := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"cargo-transport"}`)
	require.Equal(t, http.StatusOK, first.Code)
	sid := first.Header().Get(api.SessionHeader)
	require.NotEmpty(t, sid)

	second := do(e, http.MethodPost, "/api/v1/cart/lines", sid, `{"serviceId":"cargo-transport"}`)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, sid, second.Header().Get(api.SessionHeader))

	cart := decode[servers.Cart](t, do(e, http.MethodGet, "/api/v1/cart", sid, ""))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 253, cart.Items[0].CalculatedPrice)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, 506, cart.TotalPrice)
}

func Test_AddLineWithTripDetails(t *testing.T) {
	e := newTestEcho(t)
	body := `{"serviceId":"cargo-transport","details":{
		"fromLocation":"Chennai","toLocation":"Madurai","vehicleType":"medium-truck",
		"cargoType":"textiles","weight":2,"weightUnit":"tons","distance":100}}`

	rec := do(e, http.MethodPost, "/api/v1/cart/lines", "", body)

	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[servers.Cart](t, rec)
	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].VehicleType)
	assert.Equal(t, "medium-truck", *cart.Items[0].VehicleType)
	assert.Equal(t, 15750, cart.Items[0].CalculatedPrice)
	assert.Equal(t, 15750, cart.TotalPrice)
}

func Test_AddLineRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "missing service", body: `{}`, status: http.StatusBadRequest},
		{name: "unknown service", body: `{"serviceId":"space-freight"}`, status: http.StatusNotFound},
		{
			name:   "incomplete details",
			body:   `{"serviceId":"cargo-transport","details":{"fromLocation":"Chennai"}}`,
			status: http.StatusBadRequest,
		},
	}

	e := newTestEcho(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/cart/lines", "", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func Test_SetQuantityZeroRemovesLine(t *testing.T) {
	e := newTestEcho(t)
	sid := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"vehicle-hire"}`).Header().Get(api.SessionHeader)

	rec := do(e, http.MethodPut, "/api/v1/cart/lines/vehicle-hire/quantity", sid, `{"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3636, decode[servers.Cart](t, rec).TotalPrice)

	rec = do(e, http.MethodPut, "/api/v1/cart/lines/vehicle-hire/quantity", sid, `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[servers.Cart](t, rec)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalItems)
}

func Test_UpdateLineDetailsRepricesLine(t *testing.T) {
	e := newTestEcho(t)
	sid := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"cargo-transport"}`).Header().Get(api.SessionHeader)

	rec := do(e, http.MethodPatch, "/api/v1/cart/lines/cargo-transport", sid, `{"distance":100}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 505, decode[servers.Cart](t, rec).TotalPrice)
}

func Test_TripInputsAboveLimitsAreRejected(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{
			name:   "weight in tons",
			method: http.MethodPatch,
			target: "/api/v1/cart/lines/cargo-transport",
			body:   `{"weight":1e20,"weightUnit":"tons"}`,
		},
		{
			name:   "distance",
			method: http.MethodPatch,
			target: "/api/v1/cart/lines/cargo-transport",
			body:   `{"distance":20001}`,
		},
		{
			name:   "quantity",
			method: http.MethodPut,
			target: "/api/v1/cart/lines/cargo-transport/quantity",
			body:   `{"quantity":1000000000000}`,
		},
		{
			name:   "estimate distance",
			method: http.MethodPost,
			target: "/api/v1/estimates",
			body:   `{"serviceId":"cargo-transport","distance":1e300}`,
		},
		{
			name:   "details weight",
			method: http.MethodPost,
			target: "/api/v1/cart/lines",
			body: `{"serviceId":"cargo-transport","details":{"fromLocation":"Chennai","toLocation":"Madurai",
				"vehicleType":"trailer","cargoType":"steel","weight":100001,"distance":100}}`,
		},
	}

	e := newTestEcho(t)
	sid := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"cargo-transport"}`).Header().Get(api.SessionHeader)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, sid, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	cart := decode[servers.Cart](t, do(e, http.MethodGet, "/api/v1/cart", sid, ""))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 253, cart.TotalPrice)
}

func Test_RemoveLineAndClearCart(t *testing.T) {
	e := newTestEcho(t)
	sid := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"cargo-transport"}`).Header().Get(api.SessionHeader)
	do(e, http.MethodPost, "/api/v1/cart/lines", sid, `{"serviceId":"vehicle-hire"}`)

	rec := do(e, http.MethodDelete, "/api/v1/cart/lines/cargo-transport", sid, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[servers.Cart](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "vehicle-hire", cart.Items[0].Id)

	rec = do(e, http.MethodDelete, "/api/v1/cart", sid, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"totalItems":0,"totalPrice":0}`, rec.Body.String())
}

func Test_CheckoutEmptyCartConflicts(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/checkout", "", checkoutBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func Test_CheckoutStoresReceiptAndClearsCart(t *testing.T) {
	e := newTestEcho(t)
	sid := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"vehicle-hire"}`).Header().Get(api.SessionHeader)

	rec := do(e, http.MethodPost, "/api/v1/checkout", sid, checkoutBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	receipt := decode[servers.Booking](t, rec)
	assert.True(t, strings.HasPrefix(receipt.OrderId, "IYE"))
	assert.Equal(t, 1212, receipt.TotalPrice)
	require.NotNil(t, receipt.Address.State)
	assert.Equal(t, "Tamil Nadu", *receipt.Address.State)
	assert.Equal(t, servers.PaymentMethodUpi, receipt.PaymentMethod)

	cart := decode[servers.Cart](t, do(e, http.MethodGet, "/api/v1/cart", sid, ""))
	assert.Empty(t, cart.Items)

	last := do(e, http.MethodGet, "/api/v1/bookings/last", sid, "")
	require.Equal(t, http.StatusOK, last.Code)
	assert.Equal(t, receipt.OrderId, decode[servers.Booking](t, last).OrderId)
}

func Test_CheckoutRequiresCardDetails(t *testing.T) {
	e := newTestEcho(t)
	sid := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"vehicle-hire"}`).Header().Get(api.SessionHeader)
	body := strings.Replace(checkoutBody, `{"method": "upi"}`, `{"method": "credit-card"}`, 1)

	rec := do(e, http.MethodPost, "/api/v1/checkout", sid, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	cart := decode[servers.Cart](t, do(e, http.MethodGet, "/api/v1/cart", sid, ""))
	assert.Len(t, cart.Items, 1)
}

func Test_LastBookingNotFound(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/api/v1/bookings/last", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_EstimatePrice(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		estimate   int
		needsQuote bool
	}{
		{
			name:     "cargo with trip",
			body:     `{"serviceId":"cargo-transport","vehicleType":"medium-truck","weight":2,"weightUnit":"tons","distance":100}`,
			estimate: 15750,
		},
		{
			name:     "blank form falls back to defaults",
			body:     `{"serviceId":"vehicle-hire"}`,
			estimate: 1212,
		},
		{
			name:       "logistics support is quoted",
			body:       `{"serviceId":"logistics-support"}`,
			needsQuote: true,
		},
	}

	e := newTestEcho(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/estimates", "", tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			got := decode[servers.Estimate](t, rec)
			assert.Equal(t, tt.estimate, got.Estimate)
			assert.Equal(t, tt.needsQuote, got.NeedsQuote)
		})
	}
}

func Test_SubmitAndResubmitQuote(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/quotes", "", quoteBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	sid := rec.Header().Get(api.SessionHeader)
	first := decode[servers.Quote](t, rec)
	assert.True(t, strings.HasPrefix(first.QuoteId, "QT"))
	assert.False(t, first.Updated)
	assert.Equal(t, "0", first.EstimatedCost)

	edited := strings.Replace(quoteBody, `"name": "Arun Kumar"`, `"quoteId": "`+first.QuoteId+`", "name": "Arun K"`, 1)
	rec = do(e, http.MethodPost, "/api/v1/quotes", sid, edited)
	require.Equal(t, http.StatusCreated, rec.Code)
	second := decode[servers.Quote](t, rec)
	assert.Equal(t, first.QuoteId, second.QuoteId)
	assert.True(t, second.Updated)

	latest := do(e, http.MethodGet, "/api/v1/quotes/latest", sid, "")
	require.Equal(t, http.StatusOK, latest.Code)
	assert.Equal(t, "Arun K", decode[servers.Quote](t, latest).Name)
}

func Test_SessionFromCookie(t *testing.T) {
	e := newTestEcho(t)
	sid := do(e, http.MethodPost, "/api/v1/cart/lines", "", `{"serviceId":"vehicle-hire"}`).Header().Get(api.SessionHeader)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: sid})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[servers.Cart](t, rec).Items, 1)
}
