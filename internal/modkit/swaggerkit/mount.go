package swaggerkit

import (
	"net/http"

	phttp "hidegrade/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives, the document is DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount serves the swagger UI and the decorated document when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	doc := DocsPath + "/doc.json"
	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(doc, docHandler())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(httpSwagger.URL(doc)))
}
