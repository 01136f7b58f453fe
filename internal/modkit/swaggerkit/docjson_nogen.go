//go:build !swag

// Package swaggerkit mounts the swagger UI and the decorated JSON document
package swaggerkit

import "net/http"

const skeleton = `{"openapi":"3.0.3","info":{"title":"hidegrade API","version":"0.0.0"},"paths":{}}`

// docHandler serves a skeleton so the UI still loads without generated docs
func docHandler() http.HandlerFunc {
	return serveDocJSON(func() string { return skeleton }, "")
}
