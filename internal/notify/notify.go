// Package notify delivers transactional email.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
)

const (
	DefaultFrom          = "Resume Tailor <cryingtailor@resend.dev>"
	verificationSubject  = "Verify your email – Resume Tailor"
	defaultResendBaseURL = "https://api.resend.com"
)

// Notifier sends account emails.
type Notifier interface {
	SendVerification(ctx context.Context, to, verifyURL string) error
}

var verificationBody = template.Must(template.New("verify").Parse(`<p>Thanks for signing up for Resume Tailor.</p>
<p>Click the link below to verify your email and activate your account:</p>
<p><a href="{{.URL}}">{{.URL}}</a></p>
<p>This link expires in 24 hours.</p>
<p>If you didn't create an account, you can ignore this email.</p>
`))

// VerificationHTML renders the verification email body.
func VerificationHTML(verifyURL string) (string, error) {
	var buf bytes.Buffer
	if err := verificationBody.Execute(&buf, struct{ URL string }{verifyURL}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ResendNotifier posts to the Resend email API.
type ResendNotifier struct {
	APIKey     string
	From       string
	BaseURL    string
	HTTPClient *http.Client
}

// NewResendNotifier builds a notifier with a bounded HTTP timeout.
func NewResendNotifier(apiKey, from string) *ResendNotifier {
	if strings.TrimSpace(from) == "" {
		from = DefaultFrom
	}
	return &ResendNotifier{
		APIKey:     strings.TrimSpace(apiKey),
		From:       from,
		BaseURL:    defaultResendBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (n *ResendNotifier) SendVerification(ctx context.Context, to, verifyURL string) error {
	html, err := VerificationHTML(verifyURL)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(resendEmail{From: n.From, To: []string{to}, Subject: verificationSubject, HTML: html})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(n.BaseURL, "/")+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// LogNotifier writes the link to the log instead of sending mail.
type LogNotifier struct{}

func (LogNotifier) SendVerification(_ context.Context, to, verifyURL string) error {
	telemetry.Info("notify.verification", map[string]any{"to": to, "url": verifyURL})
	return nil
}

// New picks Resend when an API key is present.
func New(apiKey, from string) Notifier {
	if strings.TrimSpace(apiKey) == "" {
		return LogNotifier{}
	}
	return NewResendNotifier(apiKey, from)
}
