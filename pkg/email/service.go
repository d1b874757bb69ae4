package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendOnboardingInvite invites a customer who just bought their website to
// complete onboarding: confirm facts, adjust copy, go live.
func (s *Service) SendOnboardingInvite(toEmail, toName, businessName, slug string) error {
	onboardingURL := fmt.Sprintf("%s/onboarding/%s", s.baseURL, slug)

	subject := fmt.Sprintf("Ihre Website für %s wartet auf Sie", businessName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Willkommen bei Sitewerk!</h2>
			<p>Hallo %s,</p>
			<p>vielen Dank für Ihren Kauf. Ihre Website für <strong>%s</strong> ist reserviert und wartet auf den letzten Schliff.</p>
			<p>Im Onboarding prüfen Sie die Angaben zu Ihrem Betrieb, passen Texte an und schalten die Seite live:</p>
			<p><a href="%s" style="background-color: #e85d04; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Onboarding starten</a></p>
			<p>Oder kopieren Sie diesen Link in Ihren Browser:</p>
			<p><a href="%s">%s</a></p>
			<p>Viele Grüße,<br>Ihr Sitewerk-Team</p>
		</body>
		</html>
	`, toName, businessName, onboardingURL, onboardingURL, onboardingURL)

	plainText := fmt.Sprintf(
		"Hallo %s,\n\nvielen Dank für Ihren Kauf. Ihre Website für %s wartet auf den letzten Schliff.\n\nOnboarding starten: %s\n\nViele Grüße,\nIhr Sitewerk-Team",
		toName, businessName, onboardingURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, onboardingURL)
}

// SendSiteLiveNotification tells the customer their website is published.
func (s *Service) SendSiteLiveNotification(toEmail, toName, businessName, slug string) error {
	siteURL := fmt.Sprintf("%s/sites/%s", s.baseURL, slug)

	subject := fmt.Sprintf("Ihre Website für %s ist jetzt online", businessName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ihre Website ist live!</h2>
			<p>Hallo %s,</p>
			<p>herzlichen Glückwunsch: die Website für <strong>%s</strong> ist ab sofort online erreichbar.</p>
			<p><a href="%s" style="background-color: #e85d04; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Website ansehen</a></p>
			<p>Änderungswünsche tragen Sie jederzeit im Kundenbereich ein.</p>
			<p>Viele Grüße,<br>Ihr Sitewerk-Team</p>
		</body>
		</html>
	`, toName, businessName, siteURL)

	plainText := fmt.Sprintf(
		"Hallo %s,\n\nherzlichen Glückwunsch: die Website für %s ist ab sofort online.\n\n%s\n\nViele Grüße,\nIhr Sitewerk-Team",
		toName, businessName, siteURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, siteURL)
}

// SendPreviewOutreach sends the sales email that shows a prospect the preview
// generated for their business.
func (s *Service) SendPreviewOutreach(toEmail, businessName, slug string) error {
	previewURL := fmt.Sprintf("%s/preview/%s", s.baseURL, slug)

	subject := fmt.Sprintf("Eine fertige Website für %s", businessName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<p>Guten Tag,</p>
			<p>wir haben für <strong>%s</strong> bereits eine vollständige Website entworfen: Texte, Design und Bilder sind fertig und sofort ansehbar.</p>
			<p><a href="%s" style="background-color: #e85d04; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Vorschau ansehen</a></p>
			<p>Gefällt Ihnen der Entwurf, übernehmen Sie ihn mit wenigen Klicks. Unverbindlich und ohne Vorkosten.</p>
			<p>Viele Grüße,<br>Ihr Sitewerk-Team</p>
		</body>
		</html>
	`, businessName, previewURL)

	plainText := fmt.Sprintf(
		"Guten Tag,\n\nwir haben für %s bereits eine vollständige Website entworfen.\n\nVorschau ansehen: %s\n\nViele Grüße,\nIhr Sitewerk-Team",
		businessName, previewURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, businessName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, businessName, subject, previewURL)
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
