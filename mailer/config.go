package mailer

import (
	"os"
	"time"

	"github.com/east-hides/eastbackend/utils"
)

const (
	defaultSalesInbox = "sales@east-hides.com"
	defaultInfoInbox  = "info@east-hides.com"
	defaultTimeout    = 15 * time.Second
)

// Config carries everything the mail pipeline needs: SMTP transport
// settings, inbox routing and the acknowledgement feature flags. It is built
// once at startup and passed into the handlers by parameter.
type Config struct {
	Host         string
	Port         int
	Secure       bool // implicit TLS; false means plain dial + STARTTLS
	Username     string
	Password     string
	RejectUnauth bool
	From         string
	Timeout      time.Duration

	SalesInbox string
	InfoInbox  string

	// Send an acknowledgement to the submitter after the staff email.
	ContactConfirm bool
	// Send an RFQ confirmation to the requester after the sales email.
	MailConfirm bool
}

// LoadConfig reads the mail environment once. Missing inbox addresses fall
// back to the company defaults so a half-configured deployment still routes
// mail somewhere sensible.
func LoadConfig() Config {
	cfg := Config{
		Host:           os.Getenv("SMTP_HOST"),
		Port:           utils.ParseIntDefault(os.Getenv("SMTP_PORT"), 587),
		Secure:         os.Getenv("SMTP_SECURE") == "true",
		Username:       os.Getenv("SMTP_USER"),
		Password:       os.Getenv("SMTP_PASS"),
		RejectUnauth:   os.Getenv("SMTP_REJECT_UNAUTH") == "true",
		From:           os.Getenv("SMTP_FROM"),
		Timeout:        time.Duration(utils.ParseIntDefault(os.Getenv("SMTP_TIMEOUT_SECONDS"), 15)) * time.Second,
		SalesInbox:     os.Getenv("SALES_INBOX"),
		InfoInbox:      os.Getenv("INFO_INBOX"),
		ContactConfirm: os.Getenv("CONTACT_CONFIRM") == "true",
		MailConfirm:    os.Getenv("MAIL_CONFIRM") == "true",
	}
	if cfg.SalesInbox == "" {
		cfg.SalesInbox = defaultSalesInbox
	}
	if cfg.InfoInbox == "" {
		cfg.InfoInbox = defaultInfoInbox
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

// FromAddress is the envelope/from address: SMTP_FROM when set, otherwise
// the SMTP username.
func (c Config) FromAddress() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}
