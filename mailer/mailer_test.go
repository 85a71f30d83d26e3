package mailer

import (
	"strings"
	"testing"
)

func TestBuildMessage_MultipartAlternative(t *testing.T) {
	cfg := Config{Host: "smtp.relay.test", From: "noreply@east-hides.com"}
	m := Message{
		FromName: "East Hides RFQ Bot",
		To:       "sales@east-hides.com",
		Subject:  "RFQ test",
		Text:     "plain body",
		HTML:     "<p>html body</p>",
	}

	raw := buildMessage(cfg, m)

	for _, want := range []string{
		"From: ",
		"To: sales@east-hides.com\r\n",
		"Subject: RFQ test\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: multipart/alternative; boundary=",
		"Content-Type: text/plain; charset=UTF-8\r\n\r\nplain body",
		"Content-Type: text/html; charset=UTF-8\r\n\r\n<p>html body</p>",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q:\n%s", want, raw)
		}
	}
	if strings.Contains(raw, "Reply-To:") {
		t.Error("Reply-To header should be absent when unset")
	}
}

func TestBuildMessage_ReplyTo(t *testing.T) {
	cfg := Config{Host: "smtp.relay.test", Username: "bot@east-hides.com"}
	m := Message{
		FromName:    "East Hides — Website",
		To:          "info@east-hides.com",
		ReplyToName: "Jan",
		ReplyTo:     "jan@acme.test",
		Subject:     "Contact",
		Text:        "t",
		HTML:        "<p>t</p>",
	}

	raw := buildMessage(cfg, m)
	if !strings.Contains(raw, "Reply-To: ") || !strings.Contains(raw, "<jan@acme.test>") {
		t.Errorf("Reply-To header missing:\n%s", raw)
	}
	if !strings.Contains(raw, "bot@east-hides.com") {
		t.Error("envelope should fall back to the SMTP username")
	}
}

func TestBuildMessage_HeaderValuesCannotInjectHeaders(t *testing.T) {
	cfg := Config{Host: "smtp.relay.test", From: "noreply@east-hides.com"}
	m := Message{
		FromName:    "East Hides — Website",
		To:          "info@east-hides.com",
		ReplyToName: "Eve\r\nBcc: attacker@evil.test",
		ReplyTo:     "eve@evil.test\r\nBcc: attacker@evil.test",
		Subject:     "Hello\r\nBcc: attacker@evil.test",
		Text:        "t",
		HTML:        "<p>t</p>",
	}

	raw := buildMessage(cfg, m)
	headers, _, ok := strings.Cut(raw, "\r\n\r\n")
	if !ok {
		t.Fatalf("no header block in message:\n%s", raw)
	}
	for _, line := range strings.Split(headers, "\r\n") {
		if strings.HasPrefix(line, "Bcc:") {
			t.Errorf("smuggled header line %q", line)
		}
	}
	if !strings.Contains(headers, "Reply-To: ") {
		t.Errorf("Reply-To dropped entirely:\n%s", headers)
	}
}

func TestSend_FailsWithoutHost(t *testing.T) {
	d := NewSMTPDispatcher(Config{})
	err := d.Send(t.Context(), Message{To: "a@b.test", Subject: "s", Text: "t", HTML: "h"})
	if err == nil {
		t.Fatal("expected error when smtp host is unset")
	}
}
