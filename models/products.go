package models

// RFQDefaults pre-fills the quote form for a product.
type RFQDefaults struct {
	Unit QuantityUnit `json:"unit"`
}

// Product is one entry of the static export catalog. The list is immutable
// and lives in memory; there is no product database.
type Product struct {
	ID              string            `json:"id"`
	ReferenceCode   string            `json:"id2"`
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	Summary         string            `json:"summary"`
	HSCode          string            `json:"hsCode"`
	OriginCountries []string          `json:"originCountries"`
	Specs           map[string]string `json:"specs"`
	Packaging       string            `json:"packaging"`
	MOQKg           int               `json:"moqKg"`
	Incoterms       []Incoterm        `json:"incoterms"`
	LeadTimeDays    int               `json:"leadTimeDays"`
	Images          []string          `json:"images"`
	DatasheetURL    string            `json:"datasheetUrl,omitempty"`
	RFQDefaults     RFQDefaults       `json:"rfqDefaults"`
}
