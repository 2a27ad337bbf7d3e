package utils

import (
	"fmt"
	"log"

	"edusite/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid. Errors are
// returned so callers can decide whether to log or surface them;
// the notification triggers below all fire-and-forget.
func SendEmail(to, toName, subject, htmlBody string) error {
	key := config.AppConfig.SendGridKey
	if key == "" {
		log.Printf("Email to %s skipped: SendGrid is not configured", to)
		return nil
	}

	from := sgmail.NewEmail("Bright Sparks Academy", config.AppConfig.EmailSender)
	recipient := sgmail.NewEmail(toName, to)
	message := sgmail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(key)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the site's email chrome.
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A2B6D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B6D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #F5A623; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>BRIGHT SPARKS ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Bright Sparks Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendContactRelay forwards a contact-form message to the site inbox.
func SendContactRelay(name, email, phone, message string) {
	subject := fmt.Sprintf("Website enquiry from %s", name)
	body := fmt.Sprintf(`
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<div class="info-box">%s</div>`, name, email, phone, message)

	go func() {
		if err := SendEmail(config.AppConfig.ContactInbox, "Admissions", subject, getEmailTemplate("New Website Enquiry", body)); err != nil {
			log.Printf("Contact relay failed for %s: %v", email, err)
		}
	}()
}

// SendRegistrationAck acknowledges a course-interest registration.
func SendRegistrationAck(name, email string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for registering your interest. Our admissions team will
		reach out within two working days to talk through course options
		and schedules.</p>`, name)

	go func() {
		if err := SendEmail(email, name, "We received your registration", getEmailTemplate("Registration Received", body)); err != nil {
			log.Printf("Registration ack failed for %s: %v", email, err)
		}
	}()
}

// SendStaffApprovalEmail tells an instructor their application went
// through.
func SendStaffApprovalEmail(name, email string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your instructor application has been approved. You can now log
		in to the staff console and manage your classes:</p>
		<p><a href="%s/staff/login">%s/staff/login</a></p>`, name, config.AppConfig.SiteBaseURL, config.AppConfig.SiteBaseURL)

	go func() {
		if err := SendEmail(email, name, "Your instructor application is approved", getEmailTemplate("Welcome Aboard", body)); err != nil {
			log.Printf("Staff approval email failed for %s: %v", email, err)
		}
	}()
}

// SendStaleLeadDigest mails admins a list of franchise leads whose
// pipeline has not moved recently.
func SendStaleLeadDigest(leadNames []string) {
	if len(leadNames) == 0 {
		return
	}
	list := ""
	for _, n := range leadNames {
		list += fmt.Sprintf("<li>%s</li>", n)
	}
	body := fmt.Sprintf(`
		<p>The following franchise leads have had no contact for more
		than %d days:</p>
		<ul>%s</ul>`, config.AppConfig.StaleLeadDays, list)

	go func() {
		if err := SendEmail(config.AppConfig.ContactInbox, "Admin", "Stale franchise leads", getEmailTemplate("Pipeline Follow-ups Due", body)); err != nil {
			log.Printf("Stale lead digest failed: %v", err)
		}
	}()
}
