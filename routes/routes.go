package routes

import (
	"net/http"

	"barbershop-backend/config"
	"barbershop-backend/controllers"
	"barbershop-backend/models"
	"barbershop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Policy is the per-endpoint authorization requirement, evaluated strictly
// after token validation.
type Policy int

const (
	// Public endpoints need no identity.
	Public Policy = iota
	// AuthenticatedAny needs any valid token.
	AuthenticatedAny
	// AdminOnly needs a valid token whose role claim is Admin.
	AdminOnly
)

// Route maps one (method, path) to its handler and required policy. The full
// table lives in one place so the authorization surface can be audited at a
// glance.
type Route struct {
	Method  string
	Path    string
	Policy  Policy
	Handler gin.HandlerFunc
}

// RouteTable builds the complete endpoint table. Note the known product
// inconsistency carried over from the source system: offer mutations require
// only authentication, while catalog writes are Admin-only.
func RouteTable(db *gorm.DB, cfg *config.Config) []Route {
	auth := controllers.NewAuthController(db, cfg)
	profile := controllers.NewProfileController(db, cfg)
	service := controllers.NewServiceController(db, cfg)
	cart := controllers.NewCartController(db, cfg)
	offer := controllers.NewOfferController(db, cfg)
	review := controllers.NewReviewController(db, cfg)

	return []Route{
		// Users
		{http.MethodPost, "/Users/register", Public, auth.Register},
		{http.MethodPost, "/Users/login", Public, auth.Login},
		{http.MethodGet, "/Users/profile/:id", AuthenticatedAny, profile.GetProfile},
		{http.MethodPut, "/Users/update-profile/:id", AuthenticatedAny, profile.UpdateProfile},

		// Services catalog
		{http.MethodGet, "/BarberServicesAPI", Public, service.GetServices},
		{http.MethodGet, "/BarberServicesAPI/:id", Public, service.GetService},
		{http.MethodPost, "/BarberServicesAPI", AdminOnly, service.CreateService},
		{http.MethodPut, "/BarberServicesAPI/:id", AdminOnly, service.UpdateService},
		{http.MethodDelete, "/BarberServicesAPI/:id", AdminOnly, service.DeleteService},

		// Cart (always scoped to the caller)
		{http.MethodGet, "/Cart", AuthenticatedAny, cart.GetCartItems},
		{http.MethodPost, "/Cart", AuthenticatedAny, cart.AddToCart},
		{http.MethodGet, "/Cart/:id", AuthenticatedAny, cart.GetCartItem},
		{http.MethodDelete, "/Cart/clear", AuthenticatedAny, cart.ClearCart},
		{http.MethodDelete, "/Cart/:id", AuthenticatedAny, cart.DeleteCartItem},

		// Offers
		{http.MethodGet, "/Offers", Public, offer.GetOffers},
		{http.MethodGet, "/Offers/:id", Public, offer.GetOffer},
		{http.MethodPost, "/Offers", AuthenticatedAny, offer.CreateOffer},
		{http.MethodPut, "/Offers/:id", AuthenticatedAny, offer.UpdateOffer},
		{http.MethodDelete, "/Offers/:id", AuthenticatedAny, offer.DeleteOffer},
		{http.MethodPatch, "/Offers/:id/toggle-active", AuthenticatedAny, offer.ToggleOfferActive},

		// Reviews
		{http.MethodGet, "/Reviews", Public, review.GetReviews},
		{http.MethodGet, "/Reviews/me", AuthenticatedAny, review.GetMyReviews},
		{http.MethodGet, "/Reviews/:id", Public, review.GetReview},
		{http.MethodPost, "/Reviews", AuthenticatedAny, review.CreateReview},
		{http.MethodDelete, "/Reviews/:id", AuthenticatedAny, review.DeleteReview},
	}
}

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Uploaded media is served statically so stored URLs resolve.
	r.Static("/uploads", cfg.UploadDir)

	authRequired := utils.AuthMiddleware(cfg)
	adminOnly := utils.RequireRole(models.RoleAdmin)

	api := r.Group("/api")
	for _, rt := range RouteTable(db, cfg) {
		switch rt.Policy {
		case Public:
			api.Handle(rt.Method, rt.Path, rt.Handler)
		case AuthenticatedAny:
			api.Handle(rt.Method, rt.Path, authRequired, rt.Handler)
		case AdminOnly:
			api.Handle(rt.Method, rt.Path, authRequired, adminOnly, rt.Handler)
		}
	}

	return r
}
