package services

import (
	"skilllink_backend/internal/email"
	"skilllink_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ProfileService      ProfileService
	ServiceService      ServiceService
	AvailabilityService AvailabilityService
	RequestService      RequestService
	RatingService       RatingService
	ChatService         ChatService
	MembershipService   MembershipService
	ModerationService   ModerationService
	EmailService        email.Provider
	Storage             storage.Storage
}
