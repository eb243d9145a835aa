package utils

import (
	"fmt"
	"net/url"
	"strings"

	"inmobiliaria-premium/models"
)

// BuildWhatsAppLink builds a wa.me contact link for a listing, with a
// pre-filled inquiry message addressed to the agency phone number.
// The folder name doubles as a short human-readable reference.
func BuildWhatsAppLink(p models.Property, agencyPhone string) string {
	ref := p.FolderName
	if ref == "" && len(p.ID) >= 8 {
		ref = p.ID[:8]
	}

	var msg strings.Builder
	msg.WriteString("Hola! Me interesa esta propiedad:\n\n")
	fmt.Fprintf(&msg, "🏠 *%s*\n", p.Title)
	fmt.Fprintf(&msg, "📍 %s\n", p.Location)
	fmt.Fprintf(&msg, "💰 %s", FormatUSD(p.Price))
	if p.Status == "alquiler" {
		msg.WriteString("/mes")
	}
	msg.WriteString("\n\n")

	if p.Area > 0 || p.Bedrooms > 0 || p.Bathrooms > 0 {
		msg.WriteString("Características:\n")
		if p.Area > 0 {
			fmt.Fprintf(&msg, "📐 %gm²\n", p.Area)
		}
		if p.Bedrooms > 0 {
			fmt.Fprintf(&msg, "🛏️ %d habitaciones\n", p.Bedrooms)
		}
		if p.Bathrooms > 0 {
			fmt.Fprintf(&msg, "🚿 %d baños\n", p.Bathrooms)
		}
		msg.WriteString("\n")
	}

	msg.WriteString("¿Podrían darme más información?\n\n")
	fmt.Fprintf(&msg, "_Ref: %s_", ref)

	phone := strings.ReplaceAll(agencyPhone, " ", "")
	phone = strings.TrimPrefix(phone, "+")
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg.String())
}
