package handler

import "notification-service/internal/service"

type Handlers struct {
	Announcement *AnnouncementHandler
	Notification *NotificationHandler
	Email        *EmailHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Announcement: NewAnnouncementHandler(services.Announcement),
		Notification: NewNotificationHandler(services.Notification),
		Email:        NewEmailHandler(services.Email),
	}
}
