package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/jrebel-license-server/internal/utils"
	"github.com/go-chi/chi/v5"
)

// The activation pages are static enough that html/template would be
// overkill; the only dynamic parts are the request host and the GUID,
// both escaped-safe by construction (the GUID is validated as a UUID).

const indexPageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>License Server</title></head>
<body>
<h1>JRebel &amp; JetBrains License Server</h1>
<p>JRebel activation URL: <code>http://%[1]s/{GUID}</code></p>
<p>JetBrains license server URL: <code>http://%[1]s/</code></p>
<p>Generate a GUID and append it to this server's address to build a
personal activation URL.</p>
</body>
</html>
`

const activationPageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Activation</title></head>
<body>
<h1>Activation URL</h1>
<p><code>http://%s/%s</code></p>
<p>Paste this URL into the JRebel activation dialog together with any
email address.</p>
</body>
</html>
`

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPageHTML, r.Host)
}

func (h *Handler) activationPage(w http.ResponseWriter, r *http.Request) {
	guid := chi.URLParam(r, "guid")
	if !utils.IsValidGUID(guid) {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, activationPageHTML, r.Host, guid)
}
