package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the loaded API description to swag.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// RegisterSwaggerUI publishes doc under swag's default instance and mounts the
// Swagger UI at /swagger/. The description is registered once per process;
// swag panics on a second registration.
//
// Example:
//
//	doc, _ := LoadOpenAPI(ctx)
//	_ = RegisterSwaggerUI(e, doc)
//	// GET /swagger/index.html, GET /swagger/doc.json
func RegisterSwaggerUI(e *echo.Echo, doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
