// Package mailer renders and dispatches the site's transactional email:
// contact-form notifications and RFQ notifications, each with an optional
// copy to the submitter.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is one outbound email. Text and HTML are alternative renderings of
// the same content. ReplyTo is a bare address; ReplyToName its display name.
// Both may carry raw form input — header lines are sanitized in buildMessage.
type Message struct {
	FromName    string
	To          string
	ReplyToName string
	ReplyTo     string
	Subject     string
	Text        string
	HTML        string
}

// Dispatcher transmits a message via an external relay. Implementations
// return a transport-level error on any failure; callers map it to a generic
// client response and never surface the detail.
type Dispatcher interface {
	Send(ctx context.Context, m Message) error
}

// SMTPDispatcher sends mail through the relay described by Config.
type SMTPDispatcher struct {
	cfg Config
}

func NewSMTPDispatcher(cfg Config) *SMTPDispatcher {
	return &SMTPDispatcher{cfg: cfg}
}

// Send delivers m through the configured relay. The dial and the whole
// exchange are bounded by cfg.Timeout (or the context deadline when that is
// sooner).
func (s *SMTPDispatcher) Send(ctx context.Context, m Message) error {
	cfg := s.cfg
	if cfg.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dialer := &net.Dialer{Timeout: cfg.Timeout}
	tlsCfg := &tls.Config{ServerName: cfg.Host, InsecureSkipVerify: !cfg.RejectUnauth}

	var conn net.Conn
	var err error
	if cfg.Secure {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}

	deadline := time.Now().Add(cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Quit()

	if !cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsCfg); err != nil {
				return fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}

	if cfg.Username != "" && cfg.Password != "" {
		auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	from := cfg.FromAddress()
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(m.To); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(buildMessage(cfg, m))); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return nil
}

// Line breaks in a header value would start a new header, so any value that
// can carry form input gets them stripped before it is written.
var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

// buildMessage assembles a multipart/alternative MIME message with plain
// text and HTML parts.
func buildMessage(cfg Config, m Message) string {
	fromAddr := mail.Address{Name: m.FromName, Address: cfg.FromAddress()}
	boundary := strings.ReplaceAll(uuid.NewString(), "-", "")

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", fromAddr.String()))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", headerSanitizer.Replace(m.To)))
	if m.ReplyTo != "" {
		replyTo := mail.Address{
			Name:    headerSanitizer.Replace(m.ReplyToName),
			Address: headerSanitizer.Replace(m.ReplyTo),
		}
		msg.WriteString(fmt.Sprintf("Reply-To: %s\r\n", replyTo.String()))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject)))
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	msg.WriteString(fmt.Sprintf("Message-ID: <%s@%s>\r\n", uuid.NewString(), cfg.Host))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary))

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(m.Text)
	msg.WriteString("\r\n\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(m.HTML)
	msg.WriteString("\r\n\r\n")

	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return msg.String()
}
