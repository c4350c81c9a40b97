package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ProfileHandler      *ProfileHandler
	ServiceHandler      *ServiceHandler
	AvailabilityHandler *AvailabilityHandler
	RequestHandler      *RequestHandler
	RatingHandler       *RatingHandler
	ChatHandler         *ChatHandler
	MembershipHandler   *MembershipHandler
	ModerationHandler   *ModerationHandler
	FileHandler         *FileHandler
}
