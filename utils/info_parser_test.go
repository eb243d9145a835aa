package utils

import (
	"reflect"
	"testing"

	"inmobiliaria-premium/models"
)

func baseProperty() models.Property {
	return models.DefaultProperty("folder-1", "01-Casa-Bella")
}

func TestParseInfoFileOverridesDefaults(t *testing.T) {
	content := "titulo=Casa Bella\n" +
		"precio=$120,000\n" +
		"ubicacion=Altamira, Caracas\n" +
		"metros=250 m2\n" +
		"habitaciones=3\n" +
		"banos=2\n" +
		"tipo=Casa\n" +
		"estado=Venta\n" +
		"etiqueta=nueva\n" +
		"destacado=true\n" +
		"asesor=Maria Lopez\n" +
		"telefono=+58 412 555 1234\n"

	p := ParseInfoFile(content, baseProperty())

	if p.Title != "Casa Bella" {
		t.Errorf("title: got %q, want %q", p.Title, "Casa Bella")
	}
	if p.Price != 120000 {
		t.Errorf("price: got %v, want 120000", p.Price)
	}
	if p.Location != "Altamira, Caracas" {
		t.Errorf("location: got %q", p.Location)
	}
	if p.Area != 250 {
		t.Errorf("area: got %v, want 250", p.Area)
	}
	if p.Bedrooms != 3 || p.Bathrooms != 2 {
		t.Errorf("bedrooms/bathrooms: got %d/%d, want 3/2", p.Bedrooms, p.Bathrooms)
	}
	if p.Type != "casa" {
		t.Errorf("type should be lower-cased: got %q", p.Type)
	}
	if p.Status != "venta" {
		t.Errorf("status should be lower-cased: got %q", p.Status)
	}
	if p.Badge != "NUEVA" {
		t.Errorf("badge should be upper-cased: got %q", p.Badge)
	}
	if !p.Featured {
		t.Error("featured should be true")
	}
	if p.Asesor != "Maria Lopez" {
		t.Errorf("asesor: got %q", p.Asesor)
	}
	if p.TelefonoAsesor != "+58 412 555 1234" {
		t.Errorf("telefono_asesor: got %q", p.TelefonoAsesor)
	}
}

func TestParseInfoFileIsIdempotent(t *testing.T) {
	content := "titulo=Casa Bella\nprecio=90000\ndestacado=1\n"

	once := ParseInfoFile(content, baseProperty())
	twice := ParseInfoFile(content, once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("parsing twice changed the record:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestParseInfoFileDoesNotMutateBase(t *testing.T) {
	base := baseProperty()
	ParseInfoFile("titulo=Otra Casa\nprecio=500\n", base)

	if base.Title != "Casa Bella" || base.Price != 0 {
		t.Errorf("base record was mutated: %+v", base)
	}
}

func TestParseInfoFileLastWriteWins(t *testing.T) {
	content := "precio=100\nprice=200\nprecio=300\n"

	p := ParseInfoFile(content, baseProperty())
	if p.Price != 300 {
		t.Errorf("price: got %v, want 300 (last write wins)", p.Price)
	}
}

func TestParseInfoFileSkipsMalformedLines(t *testing.T) {
	content := "\n" +
		"   \n" +
		"sin separador\n" +
		"titulo=\n" +
		"precio=   \n" +
		"desconocido=valor\n"

	p := ParseInfoFile(content, baseProperty())

	// Defaults must survive blank values and unknown keys.
	if p.Title != "Casa Bella" {
		t.Errorf("empty value should not override title: got %q", p.Title)
	}
	if p.Price != 0 {
		t.Errorf("blank price should not override: got %v", p.Price)
	}
}

func TestParseInfoFileValueMayContainEquals(t *testing.T) {
	p := ParseInfoFile("descripcion=area social = 120m2\n", baseProperty())

	if p.Description != "area social = 120m2" {
		t.Errorf("description: got %q", p.Description)
	}
}

func TestParseInfoFileNonNumericPayloads(t *testing.T) {
	content := "precio=a consultar\nmetros=n/a\nhabitaciones=varias\n"

	p := ParseInfoFile(content, baseProperty())

	if p.Price != 0 || p.Area != 0 || p.Bedrooms != 0 {
		t.Errorf("non-numeric payloads must yield 0: price=%v area=%v bedrooms=%d",
			p.Price, p.Area, p.Bedrooms)
	}
}

func TestParseInfoFileFeaturedVariants(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"si", false},
		{"0", false},
		{"false", false},
	}

	for _, tc := range cases {
		p := ParseInfoFile("destacado="+tc.value+"\n", baseProperty())
		if p.Featured != tc.want {
			t.Errorf("destacado=%s: got %v, want %v", tc.value, p.Featured, tc.want)
		}
	}
}

func TestParseInfoFileTrimsKeysAndValues(t *testing.T) {
	p := ParseInfoFile("  TITULO  =  Casa Grande  \n", baseProperty())

	if p.Title != "Casa Grande" {
		t.Errorf("title: got %q, want %q", p.Title, "Casa Grande")
	}
}
