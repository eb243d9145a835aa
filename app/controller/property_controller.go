package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"inmobiliaria-premium/config"
	"inmobiliaria-premium/filtering"
	"inmobiliaria-premium/service"
	"inmobiliaria-premium/utils"
)

// PropertyController handles HTTP requests for the property catalog
type PropertyController struct {
	catalogService service.CatalogServiceInterface
	agency         config.Agency
}

// NewPropertyController creates a new PropertyController
func NewPropertyController(catalogService service.CatalogServiceInterface, agency config.Agency) *PropertyController {
	return &PropertyController{
		catalogService: catalogService,
		agency:         agency,
	}
}

// setCORSHeaders sets the permissive CORS headers the public site
// relies on. Applied to every response, errors included.
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// writeError writes a JSON error payload with the given status.
func writeError(w http.ResponseWriter, status int, errMsg, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errMsg,
		"message": message,
	})
}

// GetProperties handles GET /api/properties
//
// Returns the full catalog as a JSON array. Query parameters narrow and
// order the result: search, priceMin, priceMax, type, status, bedrooms,
// bathrooms, location. refresh=true bypasses the cache.
func (c *PropertyController) GetProperties(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	query := r.URL.Query()
	forceRefresh := query.Get("refresh") == "true"
	if forceRefresh {
		c.catalogService.InvalidateCache()
	}

	properties, err := c.catalogService.GetProperties(r.Context(), forceRefresh)
	if err != nil {
		log.Printf("❌ Error loading properties: %v", err)
		writeError(w, http.StatusInternalServerError, "Error al cargar propiedades", err.Error())
		return
	}

	properties = filtering.Apply(properties, query.Get("search"), filtering.Filters{
		PriceMin:     query.Get("priceMin"),
		PriceMax:     query.Get("priceMax"),
		Types:        query["type"],
		Statuses:     query["status"],
		BedroomsMin:  query.Get("bedrooms"),
		BathroomsMin: query.Get("bathrooms"),
		Location:     query.Get("location"),
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(properties); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// GetWhatsAppLink handles GET /api/properties/:id/whatsapp
//
// Returns a wa.me contact link for one listing with a pre-filled
// inquiry message addressed to the agency.
func (c *PropertyController) GetWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/properties/")
	id := strings.TrimSuffix(path, "/whatsapp")
	if id == "" || id == path {
		writeError(w, http.StatusBadRequest, "id parameter is required", "")
		return
	}

	property, found, err := c.catalogService.FindProperty(r.Context(), id)
	if err != nil {
		log.Printf("❌ Error looking up property %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error al cargar propiedades", err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Property not found", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"url": utils.BuildWhatsAppLink(property, c.agency.WhatsApp),
	})
}
