package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

// GatewayConfig holds SMTP settings for an email-to-SMS gateway.
type GatewayConfig struct {
	Server       string
	Port         string
	From         string
	To           string
	User         string
	Password     string
	AuthDisabled bool
}

// Gateway sends alerts through an email-to-SMS gateway address. Sends run
// in the background; failures are logged, not returned.
type Gateway struct {
	cfg GatewayConfig
	log *slog.Logger
}

func NewGateway(cfg GatewayConfig, log *slog.Logger) *Gateway {
	return &Gateway{cfg: cfg, log: log}
}

func (g *Gateway) ItemAlert(item models.Item) error {
	g.send(ItemAlertMessage(item))
	return nil
}

func (g *Gateway) LowStockSummary(items []models.Item) error {
	if len(items) == 0 {
		return nil
	}
	g.send(SummaryMessage(items))
	return nil
}

func (g *Gateway) send(body string) {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Inventory alert\r\n\r\n%s", g.cfg.From, g.cfg.To, body)

	addr := fmt.Sprintf("%s:%s", g.cfg.Server, g.cfg.Port)
	auth := smtp.PlainAuth("", g.cfg.User, g.cfg.Password, g.cfg.Server)
	if g.cfg.AuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, g.cfg.From, []string{g.cfg.To}, []byte(msg)); err != nil {
			g.log.Warn("failed to send alert", "error", err)
		}
	}()
}
