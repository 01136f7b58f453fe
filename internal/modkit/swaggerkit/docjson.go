//go:build swag

package swaggerkit

import (
	"net/http"

	"hidegrade/internal/platform/config"

	docs "hidegrade/internal/services/api/docs"
)

// docHandler serves the generated document, CORE_API_DOCS_TITLE overrides its title
func docHandler() http.HandlerFunc {
	title := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE", "")
	return serveDocJSON(docs.SwaggerInfo.ReadDoc, title)
}
