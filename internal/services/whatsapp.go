package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
	"github.com/aydeggy-dot/InvoiceNG/internal/utils"
)

// ShareService builds the WhatsApp share texts and wa.me deep links for
// invoices. Delivery happens in the operator's own WhatsApp; the platform's
// bot channel is not involved.
type ShareService struct {
	payBaseURL string
}

// NewShareService creates a share service. payBaseURL is the public
// payment-page origin, e.g. https://pay.invoiceng.app
func NewShareService(payBaseURL string) *ShareService {
	return &ShareService{
		payBaseURL: strings.TrimRight(payBaseURL, "/"),
	}
}

// PaymentLink returns the public payment page for an invoice
func (s *ShareService) PaymentLink(invoiceID string) string {
	return fmt.Sprintf("%s/pay/%s", s.payBaseURL, invoiceID)
}

// InvoiceMessage builds the share text for a freshly sent invoice
func (s *ShareService) InvoiceMessage(inv *models.Invoice) string {
	customerName := "Customer"
	if inv.Customer != nil && inv.Customer.Name != "" {
		customerName = inv.Customer.Name
	}

	businessName := inv.BusinessName
	if businessName == "" {
		businessName = "InvoiceNG"
	}

	var items strings.Builder
	for _, item := range inv.Items {
		fmt.Fprintf(&items, "• %s: %s\n", item.Name, utils.FormatNaira(item.Total))
	}

	return strings.TrimSpace(fmt.Sprintf(`Hello %s,

You have a new invoice from *%s*:

*Invoice:* %s
*Date:* %s
*Due:* %s

*Items:*
%s
*Total:* %s

Pay securely online:
%s

Thank you for your business!`,
		customerName,
		businessName,
		inv.InvoiceNumber,
		inv.IssueDate,
		inv.DueDate,
		items.String(),
		utils.FormatNaira(inv.Total),
		s.PaymentLink(inv.ID),
	))
}

// ReminderMessage builds the share text for a payment reminder
func (s *ShareService) ReminderMessage(inv *models.Invoice) string {
	customerName := "Customer"
	if inv.Customer != nil && inv.Customer.Name != "" {
		customerName = inv.Customer.Name
	}

	overdueText := "Payment is due soon."
	if due, err := time.Parse("2006-01-02", inv.DueDate); err == nil {
		if days := int(time.Since(due).Hours() / 24); days > 0 {
			plural := ""
			if days > 1 {
				plural = "s"
			}
			overdueText = fmt.Sprintf("This invoice is %d day%s overdue.", days, plural)
		}
	}

	balance := inv.Total - inv.PaidAmount

	return strings.TrimSpace(fmt.Sprintf(`Hello %s,

This is a friendly reminder about your pending invoice.

*Invoice:* %s
*Balance Due:* %s
*Due Date:* %s

%s

Pay now:
%s

Please ignore if you have already made payment.

Thank you!`,
		customerName,
		inv.InvoiceNumber,
		utils.FormatNaira(balance),
		inv.DueDate,
		overdueText,
		s.PaymentLink(inv.ID),
	))
}

// ShareLink builds the wa.me deep link that opens WhatsApp with the message
// pre-filled for the given customer phone number.
func (s *ShareService) ShareLink(phone, message string) (string, error) {
	canonical, err := utils.NormalizePhone(phone)
	if err != nil {
		return "", fmt.Errorf("cannot build WhatsApp link: %w", err)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", canonical, url.QueryEscape(message)), nil
}
