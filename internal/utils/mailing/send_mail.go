package mailing

import (
	"fmt"
	"html"
	"strconv"

	"gopkg.in/gomail.v2"

	"Local-Flavor-Backend/internal/utils"
	"Local-Flavor-Backend/internal/utils/logging"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	smtpMailer struct {
		cfg MailConfig
	}

	noopMailer struct{}
)

// NewMailer returns an SMTP mailer, or one that only logs when SMTP_HOST is
// not configured.
func NewMailer(cfg MailConfig) Mailer {
	if cfg.SMTPHost == "" {
		return noopMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	if m.cfg.SMTPSender != "" {
		mailer.SetAddressHeader("From", m.cfg.SMTPEmail, m.cfg.SMTPSender)
	} else {
		mailer.SetHeader("From", m.cfg.SMTPEmail)
	}
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		m.cfg.SMTPHost,
		port,
		m.cfg.SMTPEmail,
		m.cfg.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func (noopMailer) SendMail(toEmail string, subject string, _ string) error {
	logging.Debug().Str("to", toEmail).Str("subject", subject).Msg("smtp not configured, mail skipped")
	return nil
}

// ModerationNotice renders the mail sent to a submitter once their recipe
// has been reviewed.
func ModerationNotice(appURL, recipeName, recipeID, status, notes string) (string, string) {
	subject := fmt.Sprintf("Your recipe \"%s\" was %s", recipeName, status)

	body := fmt.Sprintf("<p>Your recipe <b>%s</b> has been <b>%s</b> by a moderator.</p>",
		html.EscapeString(recipeName), html.EscapeString(status))
	if notes != "" {
		body += fmt.Sprintf("<p>Reviewer notes: %s</p>", html.EscapeString(notes))
	}
	if appURL != "" && status == "approved" {
		body += fmt.Sprintf("<p><a href=\"%s/recipes/%s\">View it on the map</a></p>",
			html.EscapeString(appURL), html.EscapeString(recipeID))
	}

	return subject, body
}
