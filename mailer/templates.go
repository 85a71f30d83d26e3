package mailer

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/east-hides/eastbackend/models"
)

// Email is a fully rendered message body pair plus subject, ready to hand to
// a Dispatcher.
type Email struct {
	Subject string
	Text    string
	HTML    string
}

// htmlEscaper covers the five characters that matter for injection into the
// HTML bodies. Every user-supplied value passes through EscapeHTML exactly
// once, when the escaped view is built — template call sites never escape.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

const rowStyle = `border-bottom:1px solid #eee;padding:6px 0;`
const labelStyle = `color:#64748b;font-size:12px;text-transform:uppercase;font-weight:800;letter-spacing:.08em;`
const valueStyle = `font-weight:700;color:#0f172a;`

var contactStaffTmpl = template.Must(template.New("contactStaff").Parse(`
<div style="font-family:Inter,system-ui,Segoe UI,Roboto,Arial,sans-serif;max-width:640px;margin:auto;padding:20px 16px;">
  <h2 style="margin:0 0 6px;color:#0b2a6b;">New Contact Message</h2>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Topic</div><div style="` + valueStyle + `">{{.Topic}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Name</div><div style="` + valueStyle + `">{{.Name}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Company</div><div style="` + valueStyle + `">{{.Company}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Email</div><div style="` + valueStyle + `">{{.Email}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Phone</div><div style="` + valueStyle + `">{{.Phone}}</div></div>
  <div style="padding:10px 0 6px;">
    <div style="` + labelStyle + `">Subject</div>
    <div style="color:#0f172a;">{{.Subject}}</div>
  </div>
  <div style="padding:10px 0 6px;">
    <div style="` + labelStyle + `">Message</div>
    <div style="color:#0f172a;white-space:pre-wrap;">{{.Message}}</div>
  </div>
  <div style="margin-top:14px;color:#64748b;font-size:12px;">Time: {{.Time}}</div>
</div>`))

var contactAckTmpl = template.Must(template.New("contactAck").Parse(`
<div style="font-family:Inter,system-ui,Segoe UI,Roboto,Arial,sans-serif;max-width:640px;margin:auto;padding:20px 16px;border:1px solid #e5e7eb;border-radius:12px;background:#fff;">
  <div style="border-bottom:2px solid #0b2a6b;padding-bottom:12px;margin-bottom:16px;">
    <h1 style="margin:0;color:#0b2a6b;font-size:22px;font-weight:800;">East Hides</h1>
  </div>
  <p style="color:#111827;margin:0 0 10px;font-size:16px;"><strong>We received your message</strong></p>
  <p style="color:#374151;line-height:1.6;margin:0 0 16px;">Hi {{.Name}}, thanks for reaching out. Our team will follow up shortly.</p>
  <ul style="color:#111827;line-height:1.8;padding-left:18px;margin:0 0 16px;">
    <li><b>Topic:</b> {{.Topic}}</li>
    <li><b>Subject:</b> {{.Subject}}</li>
  </ul>
  <div style="margin-top:10px;color:#6b7280;font-size:13px;">This acknowledgement was sent from an unattended address.</div>
</div>`))

var rfqStaffTmpl = template.Must(template.New("rfqStaff").Parse(`
<div style="font-family:Inter,system-ui,Segoe UI,Roboto,Arial,sans-serif;max-width:720px;margin:auto;padding:20px 18px;background:#fff;border:1px solid #e5e7eb;border-radius:12px;">
  <div style="border-bottom:2px solid #0b2a6b;padding-bottom:10px;margin-bottom:18px;">
    <div style="font-size:22px;font-weight:800;color:#0b2a6b;">New RFQ</div>
    <div style="font-size:12px;color:#64748b;margin-top:4px;">Submitted via website · {{.Time}}</div>
    <div style="background:#eef2f7;padding:8px 10px;border-radius:8px;font-weight:800;color:#0b2a6b;font-size:12px;display:inline-block;margin-top:8px;">Ref: {{.ReferenceID}}</div>
  </div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Product</div><div style="` + valueStyle + `">{{.ProductName}} <span style="color:#64748b;font-weight:600;">({{.ProductSlug}})</span></div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Company</div><div style="` + valueStyle + `">{{.Company}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Contact</div><div style="` + valueStyle + `">{{.ContactName}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Email</div><div style="` + valueStyle + `">{{.Email}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Destination</div><div style="` + valueStyle + `">{{.Destination}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Quantity</div><div style="` + valueStyle + `">{{.Quantity}} {{.Unit}}</div></div>
  <div style="` + rowStyle + `"><div style="` + labelStyle + `">Incoterm</div><div style="` + valueStyle + `">{{.Incoterm}}</div></div>
  <div style="padding:12px 0;">
    <div style="` + labelStyle + `">Message</div>
    <div style="color:#0f172a;line-height:1.6;white-space:pre-wrap;border:1px solid #e5e7eb;border-radius:8px;padding:12px;background:#fafafa;">{{.Message}}</div>
  </div>
  <div style="margin-top:8px;color:#6b7280;font-size:12px;line-height:1.6;">
    Origin URL: {{.OriginURL}}<br/>
    Product Ref: {{.ProductReferenceCode}}
  </div>
</div>`))

var rfqConfirmTmpl = template.Must(template.New("rfqConfirm").Parse(`
<div style="font-family:Inter,system-ui,Segoe UI,Roboto,Arial,sans-serif;max-width:640px;margin:auto;background:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:20px 18px;">
  <h2 style="margin:2px 0 8px;color:#111827;font-size:20px;">We have received your Request for Quote</h2>
  <div style="color:#6b7280;font-size:14px;margin-bottom:14px;">Thank you, <span style="font-weight:600;color:#111827;">{{.ContactName}}</span>. Your inquiry is now in our queue.</div>
  <div style="background:#f9fafb;border:1px solid #e5e7eb;border-radius:8px;padding:10px 12px;margin-bottom:18px;">
    <div style="font-size:12px;color:#6b7280;text-transform:uppercase;margin-bottom:6px;">RFQ Reference ID</div>
    <div style="font-family:ui-monospace,Menlo,Consolas,monospace;font-weight:700;color:#0b2a6b;">{{.ReferenceID}}</div>
  </div>
  <div style="` + rowStyle + `"><span style="` + labelStyle + `">Product</span> <span style="` + valueStyle + `">{{.ProductName}}</span></div>
  <div style="` + rowStyle + `"><span style="` + labelStyle + `">Quantity</span> <span style="` + valueStyle + `">{{.Quantity}} {{.Unit}}</span></div>
  <div style="` + rowStyle + `"><span style="` + labelStyle + `">Incoterm</span> <span style="` + valueStyle + `">{{.Incoterm}}</span></div>
  <div style="` + rowStyle + `"><span style="` + labelStyle + `">Destination</span> <span style="` + valueStyle + `">{{.Destination}}</span></div>
  <div style="margin-top:14px;color:#374151;line-height:1.6;">We will prepare pricing and logistics and reply with a formal quotation <strong>within 1–2 business days</strong>.</div>
  <div style="margin-top:16px;color:#6b7280;font-size:12px;line-height:1.55;">
    This message was sent by <strong>east-hides.com</strong>. If you did not submit this request, please ignore this email.
  </div>
</div>`))

// contactView is a ContactMessage snapshot with optional fields defaulted.
// escaped() produces the HTML-safe variant.
type contactView struct {
	Topic   string
	Name    string
	Company string
	Email   string
	Phone   string
	Subject string
	Message string
	Time    string
}

func newContactView(m models.ContactMessage) contactView {
	return contactView{
		Topic:   string(m.Topic),
		Name:    m.Name,
		Company: orDash(m.Company),
		Email:   m.Email,
		Phone:   orDash(m.Phone),
		Subject: orDash(m.Subject),
		Message: m.Message,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}
}

func (v contactView) escaped() contactView {
	return contactView{
		Topic:   EscapeHTML(v.Topic),
		Name:    EscapeHTML(v.Name),
		Company: EscapeHTML(v.Company),
		Email:   EscapeHTML(v.Email),
		Phone:   EscapeHTML(v.Phone),
		Subject: EscapeHTML(v.Subject),
		Message: EscapeHTML(v.Message),
		Time:    v.Time,
	}
}

type rfqView struct {
	ProductSlug          string
	ProductName          string
	ProductReferenceCode string
	Company              string
	ContactName          string
	Email                string
	Quantity             string
	Unit                 string
	Incoterm             string
	Destination          string
	Message              string
	OriginURL            string
	ReferenceID          string
	Time                 string
}

func newRFQView(q models.QuoteRequest, referenceID string) rfqView {
	return rfqView{
		ProductSlug:          q.ProductSlug,
		ProductName:          q.ProductName,
		ProductReferenceCode: orDash(q.ProductReferenceCode),
		Company:              q.Company,
		ContactName:          q.ContactName,
		Email:                q.Email,
		Quantity:             q.Quantity,
		Unit:                 string(q.Unit),
		Incoterm:             string(q.Incoterm),
		Destination:          orDash(q.Destination),
		Message:              orDash(q.Message),
		OriginURL:            orDash(q.OriginURL),
		ReferenceID:          referenceID,
		Time:                 time.Now().UTC().Format(time.RFC3339),
	}
}

func (v rfqView) escaped() rfqView {
	return rfqView{
		ProductSlug:          EscapeHTML(v.ProductSlug),
		ProductName:          EscapeHTML(v.ProductName),
		ProductReferenceCode: EscapeHTML(v.ProductReferenceCode),
		Company:              EscapeHTML(v.Company),
		ContactName:          EscapeHTML(v.ContactName),
		Email:                EscapeHTML(v.Email),
		Quantity:             EscapeHTML(v.Quantity),
		Unit:                 EscapeHTML(v.Unit),
		Incoterm:             EscapeHTML(v.Incoterm),
		Destination:          EscapeHTML(v.Destination),
		Message:              EscapeHTML(v.Message),
		OriginURL:            EscapeHTML(v.OriginURL),
		ReferenceID:          v.ReferenceID,
		Time:                 v.Time,
	}
}

func render(t *template.Template, data any) string {
	var b strings.Builder
	// templates are static and views are plain structs; Execute cannot fail
	_ = t.Execute(&b, data)
	return b.String()
}

// ContactStaffEmail renders the internal notification for a contact message.
func ContactStaffEmail(m models.ContactMessage) Email {
	v := newContactView(m)
	text := fmt.Sprintf(`New contact message

Topic: %s
Name: %s
Company: %s
Email: %s
Phone: %s

Subject: %s
Message:
%s

Time: %s
`, v.Topic, v.Name, v.Company, v.Email, v.Phone, v.Subject, v.Message, v.Time)

	return Email{
		Subject: fmt.Sprintf("%s: %s", m.TopicLabel(), orSubject(m.Subject)),
		Text:    text,
		HTML:    render(contactStaffTmpl, v.escaped()),
	}
}

// ContactAckEmail renders the optional acknowledgement sent back to the
// submitter.
func ContactAckEmail(m models.ContactMessage) Email {
	v := newContactView(m)
	text := fmt.Sprintf(`Hi %s,

Thanks for contacting East Hides. We received your message and will get back to you shortly.

Summary:
- Topic: %s
- Subject: %s

Best regards,
East Hides Team
`, v.Name, v.Topic, v.Subject)

	return Email{
		Subject: "We received your message",
		Text:    text,
		HTML:    render(contactAckTmpl, v.escaped()),
	}
}

// RFQStaffEmail renders the sales notification for a quote request.
func RFQStaffEmail(q models.QuoteRequest, referenceID string) Email {
	v := newRFQView(q, referenceID)
	text := fmt.Sprintf(`New RFQ received

Reference: %s
Product: %s (%s)
Company: %s
Contact: %s
Email: %s
Destination: %s
Quantity: %s %s
Incoterm: %s

Message:
%s

Origin URL: %s
Time: %s
`, v.ReferenceID, v.ProductName, v.ProductSlug, v.Company, v.ContactName, v.Email,
		v.Destination, v.Quantity, v.Unit, v.Incoterm, v.Message, v.OriginURL, v.Time)

	return Email{
		Subject: fmt.Sprintf("RFQ — %s (%s) [%s]", q.ProductName, q.ProductSlug, referenceID),
		Text:    text,
		HTML:    render(rfqStaffTmpl, v.escaped()),
	}
}

// RFQConfirmEmail renders the optional confirmation sent to the requester,
// carrying the reference id for their records.
func RFQConfirmEmail(q models.QuoteRequest, referenceID string) Email {
	v := newRFQView(q, referenceID)
	text := fmt.Sprintf(`Hi %s,

Thanks for your request for %s. Our sales team has received your RFQ and will follow up shortly.

Reference ID: %s

Summary
- Company: %s
- Quantity: %s %s
- Incoterm: %s
- Destination: %s

Best regards,
East Hides Sales
`, v.ContactName, v.ProductName, v.ReferenceID, v.Company, v.Quantity, v.Unit, v.Incoterm, v.Destination)

	return Email{
		Subject: fmt.Sprintf("We received your RFQ — %s [%s]", q.ProductName, referenceID),
		Text:    text,
		HTML:    render(rfqConfirmTmpl, v.escaped()),
	}
}

func orSubject(s string) string {
	if s == "" {
		return "(no subject)"
	}
	return s
}
