package rest

import (
	"context"
	"net/http"

	core_port "marketplace-service/internal/core/port"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer собирает роутер: публичные маршруты, маршруты с обязательной
// аутентификацией и административный блок.
func NewServer(port string,
	allowedOrigins []string,
	authMiddleware *AuthMiddleware,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	propertyHandler *PropertyHandler,
	listingHandler *ListingHandler,
	mapHandler *MapHandler,
	campaignHandler *CampaignHandler,
	messageHandler *MessageHandler,
	contentHandler *ContentHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Токен разбирается на каждом запросе, но не требуется:
	// публичные маршруты работают анонимно.
	r.Use(authMiddleware.Authenticate)

	r.Route("/api/v1", func(r chi.Router) {
		// --- Публичные маршруты ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/properties", propertyHandler.FindProperties)
		r.Get("/properties/{propertyID}", propertyHandler.GetProperty)
		r.Get("/properties/{propertyID}/nearby-places", propertyHandler.NearbyPlaces)

		r.Get("/listings", listingHandler.FindListings)
		r.Get("/listings/{listingID}", listingHandler.GetListing)
		r.Get("/listings/{listingID}/price-history", listingHandler.GetPriceHistory)

		r.Get("/open-houses", listingHandler.ListOpenHouses)
		r.Post("/open-houses/{openHouseID}/rsvp", listingHandler.RsvpOpenHouse)

		r.Get("/map/view", mapHandler.GetMapView)
		r.Get("/map/clusters", mapHandler.GetClusters)

		r.Get("/config", contentHandler.GetActiveConfig)
		r.Get("/announcements", contentHandler.ListAnnouncements)
		r.Post("/contact", contentHandler.SubmitContact)
		r.Get("/faqs", contentHandler.ListFAQs)
		r.Post("/faqs/{faqID}/vote", contentHandler.VoteFAQ)
		r.Get("/legal", contentHandler.ListLegalDocuments)

		// --- Маршруты для аутентифицированных пользователей ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)

			r.Get("/users/nearby", userHandler.FindNearby)
			r.Get("/users/{userID}", userHandler.GetUser)
			r.Put("/users/{userID}", userHandler.UpdateUser)
			r.Delete("/users/{userID}", userHandler.DeleteUser)
			r.Get("/users/{userID}/preferences", userHandler.GetPreferences)
			r.Put("/users/{userID}/preferences", userHandler.UpdatePreferences)

			r.Post("/properties", propertyHandler.CreateProperty)
			r.Put("/properties/{propertyID}", propertyHandler.UpdateProperty)
			r.Delete("/properties/{propertyID}", propertyHandler.DeleteProperty)

			r.Post("/listings", listingHandler.CreateListing)
			r.Put("/listings/{listingID}", listingHandler.UpdateListing)
			r.Delete("/listings/{listingID}", listingHandler.DeactivateListing)
			r.Post("/listings/{listingID}/favorite", listingHandler.FavoriteListing)
			r.Post("/listings/{listingID}/inquiries", listingHandler.SendInquiry)
			r.Post("/listings/{listingID}/open-houses", listingHandler.CreateOpenHouse)

			r.Post("/campaigns", campaignHandler.CreateCampaign)
			r.Get("/campaigns", campaignHandler.ListCampaigns)
			r.Get("/campaigns/{campaignID}", campaignHandler.GetCampaign)
			r.Put("/campaigns/{campaignID}", campaignHandler.UpdateCampaign)
			r.Delete("/campaigns/{campaignID}", campaignHandler.DeleteCampaign)
			r.Post("/campaigns/{campaignID}/banners", campaignHandler.CreateBanner)
			r.Get("/campaigns/{campaignID}/banners", campaignHandler.ListBanners)

			r.Post("/ad-requests", campaignHandler.CreateAdRequest)
			r.Get("/ad-requests", campaignHandler.ListAdRequests)

			r.Post("/transactions", campaignHandler.CreateTransaction)
			r.Get("/transactions", campaignHandler.ListTransactions)

			r.Post("/messages", messageHandler.SendMessage)
			r.Get("/messages", messageHandler.ListMessages)
			r.Get("/messages/{messageID}", messageHandler.GetMessage)
			r.Post("/messages/{messageID}/read", messageHandler.MarkMessageRead)

			r.Post("/tickets", messageHandler.CreateTicket)
			r.Get("/tickets", messageHandler.ListTickets)
			r.Put("/tickets/{ticketID}", messageHandler.UpdateTicket)

			r.Post("/feedback", messageHandler.CreateFeedback)
		})

		// --- Административный блок ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth, authMiddleware.RequireAdmin)

			r.Post("/map/clusters/refresh", mapHandler.RefreshClusters)

			r.Get("/feedback", messageHandler.ListFeedback)

			r.Post("/admin/ad-requests/{requestID}/resolve", campaignHandler.ResolveAdRequest)

			r.Post("/admin/transit-stations", propertyHandler.CreateTransitStation)
			r.Post("/admin/schools", propertyHandler.CreateSchool)

			r.Put("/admin/config", contentHandler.SaveConfig)
			r.Get("/admin/config", contentHandler.ListConfigs)
			r.Post("/admin/announcements", contentHandler.SaveAnnouncement)
			r.Get("/admin/contacts", contentHandler.ListContacts)
			r.Post("/admin/faqs", contentHandler.SaveFAQ)
			r.Post("/admin/legal", contentHandler.SaveLegalDocument)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
