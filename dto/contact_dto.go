package dto

import (
	"strings"

	"github.com/east-hides/eastbackend/models"
)

// CreateContactDTO is the raw /api/contact payload. Fields are checked for
// presence only; format validation is intentionally absent.
type CreateContactDTO struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Topic   string `json:"topic"`

	// Honeypot field. Hidden on the real form; bots fill it in.
	HP string `json:"hp"`
}

var contactRequired = []string{"name", "email", "message", "topic"}

// IsSpam reports whether the honeypot was tripped.
func (d CreateContactDTO) IsSpam() bool {
	return d.HP != ""
}

// MissingFields returns the required fields that are absent or empty, in
// declaration order.
func (d CreateContactDTO) MissingFields() []string {
	values := map[string]string{
		"name":    d.Name,
		"email":   d.Email,
		"message": d.Message,
		"topic":   d.Topic,
	}
	missing := make([]string, 0)
	for _, k := range contactRequired {
		if strings.TrimSpace(values[k]) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// ToModel converts a validated payload into the domain message.
func (d CreateContactDTO) ToModel() models.ContactMessage {
	topic := models.TopicOther
	if d.Topic == string(models.TopicSales) {
		topic = models.TopicSales
	}
	return models.ContactMessage{
		Topic:   topic,
		Name:    strings.TrimSpace(d.Name),
		Company: strings.TrimSpace(d.Company),
		Email:   strings.TrimSpace(d.Email),
		Phone:   strings.TrimSpace(d.Phone),
		Subject: strings.TrimSpace(d.Subject),
		Message: d.Message,
	}
}
