// Package notify gửi email thông báo theo sự kiện thay đổi dữ liệu.
// Toàn bộ việc gửi là best-effort: lỗi SMTP chỉ được log, không ảnh hưởng request gốc.
package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"youth_bridge/config"
	"youth_bridge/internal/logger"
)

// Mailer gửi email qua SMTP. Khi SMTP_HOST trống, mailer bị tắt
// và mọi lệnh gửi trở thành no-op (môi trường dev không cần SMTP).
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
}

// NewMailer tạo Mailer từ cấu hình server.
func NewMailer(cfg *config.Configuration) *Mailer {
	if cfg.SMTP_Host == "" {
		logger.GetAppLogger().Info("SMTP_HOST trống, tắt gửi email thông báo")
		return &Mailer{enabled: false}
	}
	return &Mailer{
		dialer:  gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_Username, cfg.SMTP_Password),
		from:    cfg.SMTP_From,
		enabled: true,
	}
}

// Enabled cho biết mailer có gửi thật hay không.
func (m *Mailer) Enabled() bool {
	return m.enabled
}

// Send gửi một email HTML. Trả về nil khi mailer bị tắt.
func (m *Mailer) Send(to string, subject string, htmlBody string) error {
	if !m.enabled {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
