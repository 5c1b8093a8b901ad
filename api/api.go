// Package api exposes the customer-facing HTTP surface: catalog
// listings, the AI assistant, bookings, the dealer locator, agent
// escalation and OTP registration.
package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/everylingua/dealership-backend/agent"
	"github.com/everylingua/dealership-backend/catalog"
	"github.com/everylingua/dealership-backend/crm"
	"github.com/everylingua/dealership-backend/gemini"
	"github.com/everylingua/dealership-backend/internal/middleware"
	"github.com/everylingua/dealership-backend/internal/o11y"
	"github.com/everylingua/dealership-backend/location"
	"github.com/everylingua/dealership-backend/otp"
)

type API struct {
	r          *gin.Engine
	catalog    *catalog.Catalog
	crm        *crm.Service
	assistant  gemini.Client
	otp        *otp.Service
	dispatcher *agent.Dispatcher
	geocoder   location.Geocoder
	position   *location.Holder
	obs        *o11y.Observability
}

// Config carries the deployment knobs the router needs.
type Config struct {
	Auth0Domain     string
	Audience        string
	MetricsUsername string
	MetricsPassword string
	StaticDir       string
}

func New(
	cat *catalog.Catalog,
	crmSvc *crm.Service,
	assistant gemini.Client,
	otpSvc *otp.Service,
	dispatcher *agent.Dispatcher,
	geocoder location.Geocoder,
	obs *o11y.Observability,
	cfg Config,
) (*API, error) {
	a := &API{
		r:          gin.New(),
		catalog:    cat,
		crm:        crmSvc,
		assistant:  assistant,
		otp:        otpSvc,
		dispatcher: dispatcher,
		geocoder:   geocoder,
		position:   &location.Holder{},
		obs:        obs,
	}

	a.r.Use(gin.Recovery())
	a.r.Use(middleware.Tracing())
	a.r.Use(middleware.Logging(obs.Logger))
	a.r.Use(middleware.Metrics(obs.Registry))
	a.r.Use(cors.Default())

	a.registerPages(cfg.StaticDir)

	a.r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	metrics := gin.WrapH(promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))
	if cfg.MetricsUsername != "" {
		a.r.GET("/metrics", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}), metrics)
	} else {
		a.r.GET("/metrics", metrics)
	}

	v := a.r.Group("/api")
	{
		v.GET("/bikes", a.bikesHandler)
		v.GET("/bikes/search", a.searchBikesHandler)
		v.POST("/bikes/emi", a.emiHandler)
		v.GET("/services", a.servicesHandler)
		v.GET("/dealerships", a.dealershipsHandler)
		v.GET("/dealerships/nearby", a.nearbyDealershipsHandler)

		v.POST("/chat", a.chatHandler)
		v.POST("/voice-command", a.voiceCommandHandler)
		v.GET("/gemini-key", a.geminiKeyHandler)

		v.POST("/test-ride-booking", a.testRideBookingHandler)
		v.POST("/service-booking", a.serviceBookingHandler)
		v.GET("/customer-dashboard/:customerId", a.customerDashboardHandler)

		v.POST("/location/set", a.setLocationHandler)
		v.GET("/location/nearest-dealer", a.nearestDealerHandler)
		v.POST("/location/nearest-dealer", a.nearestDealerHandler)

		v.POST("/register/send-otp", a.sendOTPHandler)
		v.POST("/register/verify-otp", a.verifyOTPHandler)
		v.POST("/register/resend-otp", a.resendOTPHandler)

		ha := v.Group("/human-agent")
		{
			ha.POST("/escalate", a.escalateHandler)
			ha.GET("/response/:queryId", a.agentResponseHandler)

			admin := ha.Group("")
			if cfg.Auth0Domain != "" {
				ensure, err := middleware.EnsureValidToken(cfg.Auth0Domain, cfg.Audience)
				if err != nil {
					return nil, err
				}
				admin.Use(ensure)
			}
			admin.GET("/dashboard", a.agentDashboardHandler)
			admin.POST("/status/:agentId", a.agentStatusHandler)
			admin.POST("/resolve/:queryId", a.agentResolveHandler)
		}
	}

	return a, nil
}

func (a *API) Router() *gin.Engine {
	return a.r
}

// registerPages serves the bundled front-end pages when a static
// directory is configured.
func (a *API) registerPages(dir string) {
	if dir == "" {
		return
	}

	pages := map[string]string{
		"/":                      "index.html",
		"/dealer_dashboard.html": "dealer_dashboard.html",
		"/dealer_locator.html":   "dealer_locator.html",
		"/register.html":         "register.html",
	}
	for route, file := range pages {
		path := filepath.Join(dir, file)
		a.r.GET(route, func(c *gin.Context) {
			c.File(path)
		})
	}
}
