package httpserver

import "net/http"

// Controller registers its handlers on the shared router. Patterns use the
// "METHOD /path/{param}" form of http.ServeMux.
type Controller interface {
	AddRoutes(router *http.ServeMux)
}
