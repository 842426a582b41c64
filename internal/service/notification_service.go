package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
)

type Mailer interface {
	Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error
}

type NotificationService interface {
	LeadCreated(ctx context.Context, lead *entity.Lead)
	TransferSubmitted(ctx context.Context, t *entity.TransferRequest)
	ContactReceived(ctx context.Context, m *entity.ContactMessage)
}

type notificationService struct {
	mailer     Mailer
	adminEmail string
	log        logger.Logger
}

// NewNotificationService emails adminEmail about new activity. With a nil
// mailer or an empty address every notification is skipped.
func NewNotificationService(mailer Mailer, adminEmail string, log logger.Logger) NotificationService {
	return &notificationService{mailer: mailer, adminEmail: strings.TrimSpace(adminEmail), log: log}
}

func (s *notificationService) LeadCreated(ctx context.Context, lead *entity.Lead) {
	subject := fmt.Sprintf("New offer for %s", displayDomain(lead.DomainName, lead.DomainID))
	rows := [][2]string{
		{"Domain", displayDomain(lead.DomainName, lead.DomainID)},
		{"Name", lead.BuyerName},
		{"Email", lead.Email},
		{"Phone", lead.Phone},
		{"Offer", fmt.Sprintf("$%.2f", lead.OfferAmount)},
		{"Message", lead.Message},
	}
	s.send(ctx, subject, rows)
}

func (s *notificationService) TransferSubmitted(ctx context.Context, t *entity.TransferRequest) {
	proof := "not attached"
	if t.PaymentScreenshotURL != "" {
		proof = t.PaymentScreenshotURL
	}
	rows := [][2]string{
		{"Domain", t.DomainName},
		{"Name", t.BuyerName},
		{"Email", t.BuyerEmail},
		{"Phone", t.BuyerPhone},
		{"Payment proof", proof},
	}
	s.send(ctx, "New transfer purchase request: "+t.DomainName, rows)
}

func (s *notificationService) ContactReceived(ctx context.Context, m *entity.ContactMessage) {
	subject := "New contact message"
	if m.Subject != "" {
		subject += ": " + m.Subject
	}
	rows := [][2]string{
		{"Name", m.Name},
		{"Email", m.Email},
		{"Subject", m.Subject},
		{"Message", m.Message},
	}
	s.send(ctx, subject, rows)
}

func (s *notificationService) send(ctx context.Context, subject string, rows [][2]string) {
	if s.mailer == nil || s.adminEmail == "" {
		s.log.Debugf("Admin notification skipped (mail disabled): %s", subject)
		return
	}
	bodyHTML, bodyText := renderRows(rows)
	if err := s.mailer.Send(ctx, []string{s.adminEmail}, subject, bodyHTML, bodyText); err != nil {
		s.log.Warnf("Admin notification %q not sent: %v", subject, err)
	}
}

func renderRows(rows [][2]string) (string, string) {
	var h, t strings.Builder
	h.WriteString("<table>")
	for _, r := range rows {
		fmt.Fprintf(&h, "<tr><th align=\"left\">%s</th><td>%s</td></tr>", html.EscapeString(r[0]), html.EscapeString(r[1]))
		fmt.Fprintf(&t, "%s: %s\n", r[0], r[1])
	}
	h.WriteString("</table>")
	return h.String(), t.String()
}

func displayDomain(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
