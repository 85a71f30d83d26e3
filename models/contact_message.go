package models

type ContactTopic string

const (
	TopicSales ContactTopic = "sales"
	TopicOther ContactTopic = "other"
)

// ContactMessage is a validated contact form submission. It lives for the
// duration of one request and is never persisted.
type ContactMessage struct {
	Topic   ContactTopic `json:"topic"`
	Name    string       `json:"name"`
	Company string       `json:"company,omitempty"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone,omitempty"`
	Subject string       `json:"subject,omitempty"`
	Message string       `json:"message"`
}

// TopicLabel is the staff-facing label used in notification subjects.
func (m ContactMessage) TopicLabel() string {
	if m.Topic == TopicSales {
		return "Contact — Sales Inquiry"
	}
	return "Contact — General Inquiry"
}
