package usecase

import (
	"fmt"
	"html"
	"strings"

	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

// htmlParagraph escapes user input and converts newlines for HTML bodies
func htmlParagraph(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

// otpEmailBodies builds the text and HTML bodies for the OTP email
func otpEmailBodies(code string, ttlMinutes int) (string, string) {
	text := fmt.Sprintf("Your OTP is: %s. This will expire in %d minutes.", code, ttlMinutes)

	htmlBody := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5;">
        <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
          <h2 style="color: #06b6d4;">Email Verification</h2>
          <p>Your one-time password (OTP) for portfolio contact form:</p>
          <div style="background-color: #f0f9ff; padding: 20px; margin: 20px 0; text-align: center; border-radius: 4px;">
            <h1 style="color: #06b6d4; letter-spacing: 2px; margin: 0;">%s</h1>
          </div>
          <p style="color: #666;">This OTP will expire in %d minutes.</p>
          <p style="color: #999; font-size: 12px;">If you didn't request this, you can safely ignore this email.</p>
        </div>
      </div>
    `, code, ttlMinutes)

	return text, htmlBody
}

// adminEmailBodies builds the operator notification for a submission
func adminEmailBodies(msg *models.ContactMessage) (string, string) {
	text := fmt.Sprintf("From: %s (%s)\n\nSubject: %s\n\nMessage:\n%s",
		msg.Name, msg.Email, msg.Subject, msg.Message)

	htmlBody := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 20px;">
        <h2 style="color: #06b6d4;">New Contact Form Submission</h2>
        <p><strong>From:</strong> %s (%s)</p>
        <p><strong>Subject:</strong> %s</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
        <h3>Message:</h3>
        <p>%s</p>
      </div>
    `, html.EscapeString(msg.Name), html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject), htmlParagraph(msg.Message))

	return text, htmlBody
}

// confirmationEmailBodies builds the acknowledgement sent back to the sender
func confirmationEmailBodies(msg *models.ContactMessage) (string, string) {
	text := "Thank you for your message. We will get back to you soon."

	htmlBody := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5;">
        <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
          <h2 style="color: #06b6d4;">Message Received</h2>
          <p>Hi %s,</p>
          <p>Thank you for contacting me. I've received your message and will get back to you as soon as possible.</p>
          <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
          <h4>Your Message:</h4>
          <p><strong>Subject:</strong> %s</p>
          <p>%s</p>
          <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
          <p style="color: #999; font-size: 12px;">This is an automated response. Please don't reply to this email.</p>
        </div>
      </div>
    `, html.EscapeString(msg.Name), html.EscapeString(msg.Subject), htmlParagraph(msg.Message))

	return text, htmlBody
}
