// Package catalog holds the file-based product catalog. It is the source of
// truth for the marketing site: an immutable in-memory list, no database.
package catalog

import (
	"github.com/east-hides/eastbackend/models"
	"github.com/east-hides/eastbackend/utils"
)

var products = []models.Product{
	{
		ID:              "arabic-gum-grade-1",
		ReferenceCode:   "EPRD-100500",
		Slug:            "arabic-gum-grade-one",
		Name:            "Arabic Gum — Grade One",
		Category:        "Gum Resins",
		Summary:         "Premium Hashab selection (primarily Acacia senegal); clean, uniform nodules; clear solution on dissolution.",
		HSCode:          "130120",
		OriginCountries: []string{"Sudan", "Somalia", "Ethiopia"},
		Specs: map[string]string{
			"productName":      "Arabic Gum Grade One",
			"botanicalSource":  "Acacia senegal (primarily)",
			"appearance":       "Pale yellow to white nodules, clean and uniform",
			"purity":           "Min. 95% soluble gum",
			"moistureContent":  "Max 10%",
			"ashContent":       "Max 3%",
			"pH_1pct":          "4.5–5.5",
			"odor":             "Odorless or slightly characteristic",
			"taste":            "Mild, slightly sweet",
			"solubility":       "Fully soluble in water, forms a clear solution",
			"applicationAreas": "Food & beverage, pharmaceuticals, cosmetics, printing inks",
		},
		Packaging:    "25 kg multi-wall bags (jumbo on request)",
		MOQKg:        1000,
		Incoterms:    []models.Incoterm{models.IncotermFOB, models.IncotermCFR, models.IncotermCIF},
		LeadTimeDays: 14,
		Images:       []string{"/product/gum_grade1.png"},
		RFQDefaults:  models.RFQDefaults{Unit: models.UnitKg},
	},
	{
		ID:              "arabic-gum-grade-2",
		ReferenceCode:   "EPRD-100501",
		Slug:            "arabic-gum-grade-2",
		Name:            "Arabic Gum — Grade 2",
		Category:        "Gum Resins",
		Summary:         "Industrial/technical grade (Acacia senegal or seyal); consistent solubility for confectionery, beverages, pharma, textiles.",
		HSCode:          "130120",
		OriginCountries: []string{"Sudan", "Somalia", "Ethiopia"},
		Specs: map[string]string{
			"productName":       "Arabic Gum Grade 2",
			"botanicalSource":   "Acacia senegal or Acacia seyal",
			"appearance":        "Light brown to reddish-brown granules or powder",
			"purity":            "Minimum 85% soluble gum",
			"moistureContent":   "Max 12%",
			"ashContent":        "Max 4%",
			"pH_1pct":           "4.0–5.5",
			"odor":              "Odorless or slight characteristic odor",
			"taste":             "Bland, slightly sweet",
			"solubility":        "Fully soluble in water, insoluble in alcohol",
			"usageApplications": "Confectionery, beverages, pharmaceuticals, textiles",
		},
		Packaging:    "25 kg bags",
		MOQKg:        1500,
		Incoterms:    []models.Incoterm{models.IncotermFOB, models.IncotermCIF},
		LeadTimeDays: 16,
		Images:       []string{"/product/arabic_gum_g2.png"},
		RFQDefaults:  models.RFQDefaults{Unit: models.UnitKg},
	},
	{
		ID:              "myrrh-gum-grade-one",
		ReferenceCode:   "EPRD-100502",
		Slug:            "myrrah-gum-grade-one",
		Name:            "Myrrh Gum — Grade One",
		Category:        "Gum Resins",
		Summary:         "Clean reddish- to yellow-brown resin exudate; suitable for perfumery, incense, oral care and traditional applications.",
		HSCode:          "130190",
		OriginCountries: []string{"Somalia", "Ethiopia"},
		Specs: map[string]string{
			"source":       "Commiphora myrrha",
			"appearance":   "Reddish-brown to yellow-brown resin lumps",
			"odor":         "Warm, aromatic, slightly bitter",
			"taste":        "Bitter and aromatic",
			"solubility":   "Partially soluble in alcohol, insoluble in water",
			"resinContent": "30–60%",
			"gumContent":   "25–40%",
			"essentialOil": "5–10%",
			"use":          "Perfumery, incense, oral care, traditional medicine",
			"form":         "Natural dried exudate",
		},
		Packaging:    "25 kg bags",
		MOQKg:        500,
		Incoterms:    []models.Incoterm{models.IncotermFOB, models.IncotermCIF},
		LeadTimeDays: 12,
		Images:       []string{"/product/product_myrrah1.png"},
		RFQDefaults:  models.RFQDefaults{Unit: models.UnitKg},
	},
	{
		ID:              "myrrh-gum-grade-two",
		ReferenceCode:   "EPRD-100503",
		Slug:            "myrrah-gum-grade-two",
		Name:            "Myrrh Gum — Grade Two",
		Category:        "Gum Resins",
		Summary:         "Commercial grade myrrh; same compositional ranges with wider visual variance; suited to incense/perfumery bases.",
		HSCode:          "130190",
		OriginCountries: []string{"Somalia", "Ethiopia"},
		Specs: map[string]string{
			"source":       "Commiphora myrrha",
			"appearance":   "Reddish-brown to yellow-brown resin lumps",
			"odor":         "Warm, aromatic, slightly bitter",
			"taste":        "Bitter and aromatic",
			"solubility":   "Partially soluble in alcohol, insoluble in water",
			"resinContent": "30–60%",
			"gumContent":   "25–40%",
			"essentialOil": "5–10%",
			"use":          "Perfumery, incense, oral care, traditional medicine",
			"form":         "Natural dried exudate",
		},
		Packaging:    "25 kg bags",
		MOQKg:        500,
		Incoterms:    []models.Incoterm{models.IncotermFOB, models.IncotermCIF},
		LeadTimeDays: 12,
		Images:       []string{"/product/product_myrrah2.png"},
		RFQDefaults:  models.RFQDefaults{Unit: models.UnitKg},
	},
	{
		ID:              "opoponax-gum",
		ReferenceCode:   "EPRD-100504",
		Slug:            "oppoponax-gum",
		Name:            "Opoponax Gum",
		Category:        "Gum Resins",
		Summary:         "Warm balsamic, myrrh-like aroma; traditional perfumery and incense resin with defined resin/gum/oil ranges.",
		HSCode:          "130190",
		OriginCountries: []string{"Somalia", "Ethiopia"},
		Specs: map[string]string{
			"productName":         "Opoponax Gum",
			"botanicalSource":     "Commiphora erythraea or Commiphora guidottii",
			"appearance":          "Reddish-brown to dark brown lumps or tears",
			"odor":                "Warm, sweet, balsamic, myrrh-like aroma",
			"taste":               "Bitter and aromatic",
			"solubility":          "Partially soluble in alcohol, poorly soluble in water",
			"meltingPoint":        "Softens around 85–95°C",
			"resinContent":        "60–70%",
			"essentialOilContent": "5–10%",
			"gumContent":          "20–30%",
			"applicationAreas":    "Perfumery, incense, traditional medicine, aromatherapy",
		},
		Packaging:    "25 kg bags",
		MOQKg:        600,
		Incoterms:    []models.Incoterm{models.IncotermFOB, models.IncotermCFR},
		LeadTimeDays: 15,
		Images:       []string{"/product/product_oppoponax.png"},
		RFQDefaults:  models.RFQDefaults{Unit: models.UnitKg},
	},
	{
		ID:              "frankincense-resin",
		ReferenceCode:   "EPRD-100505",
		Slug:            "frankincense-rasin",
		Name:            "Frankincense — Resin",
		Category:        "Gum Resins",
		Summary:         "Pale-to-golden tears with fresh woody/citrus-balsamic aroma; used in incense, aromatherapy, skincare.",
		HSCode:          "130190",
		OriginCountries: []string{"Somalia", "Ethiopia"},
		Specs: map[string]string{
			"source":       "Boswellia species (e.g., Boswellia sacra, Boswellia serrata)",
			"appearance":   "Pale yellow to golden or amber resin tears",
			"odor":         "Fresh, woody, citrus-balsamic aroma",
			"taste":        "Slightly bitter, aromatic",
			"solubility":   "Partially soluble in alcohol, insoluble in water",
			"resinContent": "60–85%",
			"gumContent":   "6–16%",
			"essentialOil": "5–10%",
			"use":          "Incense, aromatherapy, skincare, traditional medicine",
			"form":         "Natural hardened resin (granules or tears)",
		},
		Packaging:    "25 kg bags",
		MOQKg:        400,
		Incoterms:    []models.Incoterm{models.IncotermFOB, models.IncotermCIF},
		LeadTimeDays: 10,
		Images:       []string{"/product/product_frankinecense.png"},
		RFQDefaults:  models.RFQDefaults{Unit: models.UnitKg},
	},
}

func init() {
	for i := range products {
		if products[i].Slug == "" {
			products[i].Slug = utils.GenerateSlug(products[i].Name)
		}
	}
}

// ListProducts returns the full catalog. Callers must not mutate the
// returned slice.
func ListProducts() []models.Product {
	return products
}

// GetProductBySlug looks a product up by its URL slug.
func GetProductBySlug(slug string) (*models.Product, bool) {
	for i := range products {
		if products[i].Slug == slug {
			return &products[i], true
		}
	}
	return nil, false
}
