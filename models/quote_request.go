package models

type QuantityUnit string

const (
	UnitKg  QuantityUnit = "kg"
	UnitTon QuantityUnit = "ton"
)

type Incoterm string

const (
	IncotermFOB Incoterm = "FOB"
	IncotermCFR Incoterm = "CFR"
	IncotermCIF Incoterm = "CIF"
	IncotermEXW Incoterm = "EXW"
)

// QuoteRequest is a validated RFQ submission. Product identifiers come from
// the client and are trusted for display only; they are not re-checked
// against the catalog. Like ContactMessage it is never persisted — the
// reference id returned to the caller is the only correlation handle.
type QuoteRequest struct {
	ProductSlug          string       `json:"product"`
	ProductName          string       `json:"productName"`
	ProductReferenceCode string       `json:"productId2,omitempty"`
	Company              string       `json:"company"`
	ContactName          string       `json:"contactName"`
	Email                string       `json:"email"`
	Quantity             string       `json:"quantity"`
	Unit                 QuantityUnit `json:"unit"`
	Incoterm             Incoterm     `json:"incoterm"`
	Destination          string       `json:"destination,omitempty"`
	Message              string       `json:"message,omitempty"`
	OriginURL            string       `json:"originUrl,omitempty"`
}
