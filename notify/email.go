// Package notify sends the report-ready email once a narrative has landed.
package notify

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"github.com/cryptoquest/insight-api/config"
	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

// EmailService handles email sending over SMTP.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// BuildReportReadyEmail renders the notification for a finished report.
func (es *EmailService) BuildReportReadyEmail(trader *models.Trader, report *models.Report) (string, string) {
	subject := "Your CryptoQuest trading insight report is ready"
	body := fmt.Sprintf(`Hello %s,

Your personalized trading insight report has been generated.

Composite performance score: %.1f
Win rate: %.1f%%
Quiz score: %.1f%%

Open the app to read your full evaluation and recommendations.

Best regards,
The CryptoQuest Team`, trader.FirstName,
		report.Metrics.CompositePerformanceScore,
		report.Metrics.WinRate,
		report.Metrics.QuizScoreNormalized)

	return subject, body
}

// SendEmail delivers a message, or logs it when SMTP is not configured so
// the funnel keeps working in development.
func (es *EmailService) SendEmail(to, subject, body string) error {
	if es.cfg.Email.Username == "" || es.cfg.Email.Password == "" {
		utils.LogInfo("SMTP not configured, logging email instead")
		utils.LogInfo("=== EMAIL ===")
		utils.LogInfo("To: %s", to)
		utils.LogInfo("Subject: %s", subject)
		utils.LogInfo("Body: %s", body)
		utils.LogInfo("=============")
		return nil
	}

	return es.sendEmail(to, subject, body)
}

// sendEmail sends an email using SMTP with SSL support.
func (es *EmailService) sendEmail(to, subject, body string) error {
	utils.LogInfo("Sending email to %s: %s", to, subject)

	message := fmt.Sprintf("From: %s <%s>\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", es.cfg.Email.FromName, es.cfg.Email.FromAddress, to, subject, body)

	addr := fmt.Sprintf("%s:%d", es.cfg.Email.SMTPHost, es.cfg.Email.SMTPPort)

	var conn net.Conn
	var err error

	if es.cfg.Email.SMTPPort == 465 {
		// Port 465 uses implicit SSL (SMTPS)
		utils.LogDebug("Connecting to SMTP server %s with SSL", addr)
		tlsConfig := &tls.Config{
			ServerName: es.cfg.Email.SMTPHost,
		}
		conn, err = tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			utils.LogError("Failed to establish SSL connection to %s: %v", addr, err)
			return err
		}
	} else {
		// Port 587 or 25 uses plain connection with STARTTLS
		utils.LogDebug("Connecting to SMTP server %s (plain)", addr)
		conn, err = net.Dial("tcp", addr)
		if err != nil {
			utils.LogError("Failed to connect to %s: %v", addr, err)
			return err
		}
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, es.cfg.Email.SMTPHost)
	if err != nil {
		utils.LogError("Failed to create SMTP client: %v", err)
		return err
	}
	defer client.Quit()

	if es.cfg.Email.SMTPPort != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsConfig := &tls.Config{
				ServerName: es.cfg.Email.SMTPHost,
			}
			if err = client.StartTLS(tlsConfig); err != nil {
				utils.LogError("Failed to start TLS: %v", err)
				return err
			}
			utils.LogDebug("STARTTLS initiated successfully")
		}
	}

	auth := smtp.PlainAuth("", es.cfg.Email.Username, es.cfg.Email.Password, es.cfg.Email.SMTPHost)
	if err = client.Auth(auth); err != nil {
		utils.LogError("SMTP authentication failed: %v", err)
		return err
	}

	if err = client.Mail(es.cfg.Email.FromAddress); err != nil {
		utils.LogError("Failed to set sender: %v", err)
		return err
	}

	if err = client.Rcpt(to); err != nil {
		utils.LogError("Failed to set recipient: %v", err)
		return err
	}

	writer, err := client.Data()
	if err != nil {
		utils.LogError("Failed to open data writer: %v", err)
		return err
	}
	defer writer.Close()

	if _, err = writer.Write([]byte(message)); err != nil {
		utils.LogError("Failed to write message: %v", err)
		return err
	}

	utils.LogInfo("Email sent successfully to %s", to)
	return nil
}
