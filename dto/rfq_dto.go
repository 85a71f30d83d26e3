package dto

import (
	"strings"

	"github.com/east-hides/eastbackend/models"
)

// CreateRFQDTO is the raw /api/rfq payload. Product identifiers are supplied
// by the client and used for display only.
type CreateRFQDTO struct {
	Product     string `json:"product"`
	ProductName string `json:"productName"`
	ProductID2  string `json:"productId2"`
	Company     string `json:"company"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Incoterm    string `json:"incoterm"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
	OriginURL   string `json:"originUrl"`
}

var rfqRequired = []string{
	"product", "productName", "company", "contactName",
	"email", "quantity", "unit", "incoterm",
}

// MissingFields returns the required fields that are absent or empty, in
// declaration order.
func (d CreateRFQDTO) MissingFields() []string {
	values := map[string]string{
		"product":     d.Product,
		"productName": d.ProductName,
		"company":     d.Company,
		"contactName": d.ContactName,
		"email":       d.Email,
		"quantity":    d.Quantity,
		"unit":        d.Unit,
		"incoterm":    d.Incoterm,
	}
	missing := make([]string, 0)
	for _, k := range rfqRequired {
		if strings.TrimSpace(values[k]) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// ToModel converts a validated payload into the domain request.
func (d CreateRFQDTO) ToModel() models.QuoteRequest {
	return models.QuoteRequest{
		ProductSlug:          strings.TrimSpace(d.Product),
		ProductName:          strings.TrimSpace(d.ProductName),
		ProductReferenceCode: strings.TrimSpace(d.ProductID2),
		Company:              strings.TrimSpace(d.Company),
		ContactName:          strings.TrimSpace(d.ContactName),
		Email:                strings.TrimSpace(d.Email),
		Quantity:             strings.TrimSpace(d.Quantity),
		Unit:                 models.QuantityUnit(strings.TrimSpace(d.Unit)),
		Incoterm:             models.Incoterm(strings.TrimSpace(d.Incoterm)),
		Destination:          strings.TrimSpace(d.Destination),
		Message:              d.Message,
		OriginURL:            strings.TrimSpace(d.OriginURL),
	}
}
