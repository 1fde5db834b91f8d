// pkg/email/email.go
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

type EmailService struct {
	apiKey     string
	from       string
	ownerEmail string
	templates  *template.Template
	client     *http.Client
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type ContactNotificationData struct {
	Subject string
	Name    string
	Email   string
	Phone   string
	Message string
}

type DailyDigestData struct {
	UnreadCount int64
	Date        time.Time
}

func NewEmailService(apiKey, ownerEmail string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:     apiKey,
		from:       "Selecan <noreply@selecan.co.jp>",
		ownerEmail: ownerEmail,
		templates:  templates,
		client:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *EmailService) sendTemplateEmail(ctx context.Context, to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("Resend API error: Status: %d, Body: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	return nil
}

// NotifyContactReceived sends the owner a notification about a new contact
// form submission. The phone row is omitted from the body when empty.
func (s *EmailService) NotifyContactReceived(ctx context.Context, data ContactNotificationData) error {
	subject := fmt.Sprintf("New contact inquiry: %s", data.Subject)
	return s.sendTemplateEmail(ctx, s.ownerEmail, subject, "contact_notification.html", data)
}

// SendDailyDigest sends the owner the unread inquiry count for the day.
func (s *EmailService) SendDailyDigest(ctx context.Context, unreadCount int64, date time.Time) error {
	data := DailyDigestData{
		UnreadCount: unreadCount,
		Date:        date,
	}
	return s.sendTemplateEmail(ctx, s.ownerEmail, "Your Daily Inquiry Digest 📊", "daily_digest.html", data)
}
