package router

import (
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/dtroode/storefront-server/internal/api/http/handler"
	"github.com/dtroode/storefront-server/internal/api/http/middleware"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// Options tunes the HTTP surface.
type Options struct {
	AllowedOrigins []string
	MaxAvatarBytes int64
	LoginRate      rate.Limit
	LoginBurst     int
	// TrustedProxies are the peers allowed to set X-Forwarded-For.
	TrustedProxies []netip.Prefix
}

// Router builds the public HTTP API.
type Router struct {
	customerService handler.CustomerService
	addressService  handler.AddressService
	catalogService  handler.CatalogService
	contextManager  model.ContextManager
	opts            Options
	logger          *logger.Logger
}

// New creates a new HTTP Router.
func New(
	customerService handler.CustomerService,
	addressService handler.AddressService,
	catalogService handler.CatalogService,
	contextManager model.ContextManager,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		customerService: customerService,
		addressService:  addressService,
		catalogService:  catalogService,
		contextManager:  contextManager,
		opts:            opts,
		logger:          logger,
	}
}

// Register mounts every route with its middleware chain.
func (r *Router) Register() http.Handler {
	customerHandler := handler.NewCustomer(r.customerService, r.contextManager, r.opts.MaxAvatarBytes, r.logger)
	addressHandler := handler.NewAddress(r.addressService, r.contextManager, r.logger)
	catalogHandler := handler.NewCatalog(r.catalogService, r.logger)

	authenticate := middleware.NewAuthenticate(r.contextManager)
	loginLimiter := middleware.NewRateLimiter(r.opts.LoginRate, r.opts.LoginBurst, 10*time.Minute)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(middleware.NewClientIP(r.opts.TrustedProxies).Handle)
	mux.Use(middleware.NewRecover(r.logger).Handle)
	mux.Use(middleware.NewLogging(r.logger).Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{handler.AccessTokenHeader},
		MaxAge:         300,
	}))
	mux.Use(authenticate.Handle)

	mux.Route("/customer", func(cr chi.Router) {
		cr.Post("/signup", customerHandler.Signup)
		cr.With(loginLimiter.Handle).Post("/login", customerHandler.Login)
		cr.Post("/logout", customerHandler.Logout)
		cr.Put("/password", customerHandler.UpdatePassword)
		cr.Get("/", customerHandler.Get)
		cr.Put("/avatar", customerHandler.UploadAvatar)
		cr.Get("/avatar", customerHandler.DownloadAvatar)
		cr.Delete("/avatar", customerHandler.DeleteAvatar)
	})

	mux.Post("/address", addressHandler.Save)
	mux.Get("/address/customer", addressHandler.List)
	mux.Delete("/address/{addressId}", addressHandler.Delete)
	mux.Get("/states", addressHandler.ListStates)

	mux.Get("/category", catalogHandler.ListCategories)
	mux.Get("/category/{categoryId}", catalogHandler.GetCategory)
	mux.Get("/brand/{brandId}", catalogHandler.GetBrand)
	mux.Get("/brand/name/{brandName}", catalogHandler.ListBrandsByName)
	mux.Get("/brand/category/{categoryId}", catalogHandler.ListBrandsByCategory)

	return mux
}
