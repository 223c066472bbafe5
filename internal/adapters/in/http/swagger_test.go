package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	api "booking/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SwaggerUIServesLoadedDescription(t *testing.T) {
	doc, err := api.LoadOpenAPI(t.Context())
	require.NoError(t, err)

	e := echo.New()
	require.NoError(t, api.RegisterSwaggerUI(e, doc))
	// a second echo instance reuses the registered description
	require.NoError(t, api.RegisterSwaggerUI(echo.New(), doc))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Booking cart API"`)
	assert.Contains(t, rec.Body.String(), "/api/v1/cart/lines/{id}/quantity")
}
