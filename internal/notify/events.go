package notify

import (
	"context"
	"fmt"

	authmodels "youth_bridge/internal/api/auth/models"
	authsvc "youth_bridge/internal/api/auth/service"
	"youth_bridge/internal/api/events"
	jobmodels "youth_bridge/internal/api/job/models"
	jobsvc "youth_bridge/internal/api/job/service"
	"youth_bridge/internal/global"
	"youth_bridge/internal/logger"
)

// RegisterNotifications đăng ký gửi email theo sự kiện:
//   - users:insert        → email chào mừng
//   - applications:update → email báo trạng thái hồ sơ thay đổi
//
// Gọi một lần lúc khởi động, sau khi registry collection đã sẵn sàng.
func RegisterNotifications(mailer *Mailer) error {
	if !mailer.Enabled() {
		return nil
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}
	jobService, err := jobsvc.NewJobService()
	if err != nil {
		return err
	}

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		switch e.Name() {
		case global.MongoDB_ColNames.Users + ":" + events.OpInsert:
			user, ok := e.Document.(authmodels.User)
			if !ok || user.Email == "" {
				return
			}
			sendWelcome(mailer, user)

		case global.MongoDB_ColNames.Applications + ":" + events.OpUpdate:
			application, ok := e.Document.(jobmodels.Application)
			if !ok {
				return
			}
			sendApplicationStatus(mailer, userService, jobService, application)
		}
	})
	return nil
}

func sendWelcome(mailer *Mailer, user authmodels.User) {
	body := fmt.Sprintf(`<p>Xin chào %s,</p>
<p>Tài khoản của bạn trên YouthBridge đã được tạo và đang chờ kích hoạt.
Bạn sẽ nhận được thông báo khi tài khoản sẵn sàng sử dụng.</p>
<p><a href="%s">Truy cập YouthBridge</a></p>`,
		user.FullName, global.ServerConfig.FrontendURL)

	if err := mailer.Send(user.Email, "Chào mừng đến với YouthBridge", body); err != nil {
		logger.GetAppLogger().WithField("email", user.Email).Warnf("Gửi email chào mừng thất bại: %v", err)
	}
}

var applicationStatusLabels = map[string]string{
	jobmodels.ApplicationPending:     "đang chờ xử lý",
	jobmodels.ApplicationReviewed:    "đang được xem xét",
	jobmodels.ApplicationShortlisted: "được đưa vào danh sách ngắn",
	jobmodels.ApplicationAccepted:    "được chấp nhận",
	jobmodels.ApplicationRejected:    "bị từ chối",
}

func sendApplicationStatus(mailer *Mailer, userService *authsvc.UserService, jobService *jobsvc.JobService, application jobmodels.Application) {
	label, ok := applicationStatusLabels[application.Status]
	if !ok {
		return
	}

	ctx := context.Background()
	applicant, err := userService.FindOneById(ctx, application.ApplicantID)
	if err != nil || applicant.Email == "" {
		return
	}
	job, err := jobService.FindOneById(ctx, application.JobID)
	if err != nil {
		return
	}

	subject := fmt.Sprintf("Hồ sơ ứng tuyển \"%s\" đã cập nhật", job.Title)
	body := fmt.Sprintf(`<p>Xin chào %s,</p>
<p>Hồ sơ ứng tuyển của bạn cho vị trí <b>%s</b> hiện %s.</p>
<p><a href="%s">Xem chi tiết trên YouthBridge</a></p>`,
		applicant.FullName, job.Title, label, global.ServerConfig.FrontendURL)

	if err := mailer.Send(applicant.Email, subject, body); err != nil {
		logger.GetAppLogger().WithField("email", applicant.Email).Warnf("Gửi email trạng thái hồ sơ thất bại: %v", err)
	}
}
