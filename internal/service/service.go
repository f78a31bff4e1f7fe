package service

import (
	"notification-service/internal/config"
	"notification-service/internal/repository"
)

type Services struct {
	Notification NotificationService
	Announcement AnnouncementService
	Email        EmailService
}

func NewServices(store repository.Store, cfg *config.Config) *Services {
	return &Services{
		Notification: NewNotificationService(store),
		Announcement: NewAnnouncementService(store),
		Email:        NewEmailService(cfg),
	}
}
