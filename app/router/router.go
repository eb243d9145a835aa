package router

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"inmobiliaria-premium/app/controller"
)

type Controllers struct {
	Property *controller.PropertyController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// withRequestID tags each response with a short request id so log lines
// can be correlated with client reports.
func withRequestID(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		w.Header().Set("X-Request-ID", id)
		log.Printf("[%s] %s %s", id, r.Method, r.URL.Path)
		h(w, r)
	}
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", withRequestID(pingHandler))

	// Property catalog
	http.HandleFunc("/api/properties", withRequestID(controllers.Property.GetProperties))

	// Per-property actions
	http.HandleFunc("/api/properties/", withRequestID(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/whatsapp") {
			controllers.Property.GetWhatsAppLink(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	}))
}
