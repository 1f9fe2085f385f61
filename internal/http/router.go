// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/ai"
	"wayfare/internal/http/handlers"
	"wayfare/internal/http/middleware"
	"wayfare/internal/modules/account"
	"wayfare/internal/modules/assistant"
	"wayfare/internal/modules/profile"
	"wayfare/internal/modules/suggest"
	"wayfare/internal/modules/trip"
)

type RouterDeps struct {
	Planner   *ai.Service
	Suggest   *suggest.Service
	Trips     *trip.Service
	Profiles  *profile.Service
	Account   *account.Service
	Assistant *assistant.Service
	Issuer    *account.TokenIssuer
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	authHandler := handlers.NewAuthHandler(deps.Account)
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)

	aiHandler := handlers.NewAIHandler(deps.Planner, deps.Suggest)
	r.POST("/api/ai/trip-plan", aiHandler.TripPlan)
	r.POST("/api/ai/suggestions", aiHandler.Suggestions)
	r.GET("/api/ai/trending", aiHandler.Trending)
	r.GET("/api/ai/personalized", aiHandler.Personalized)
	r.GET("/api/ai/destinations", aiHandler.Destinations)
	r.POST("/api/ai/activities", aiHandler.Activities)

	profileHandler := handlers.NewProfileHandler(deps.Profiles)
	r.POST("/api/profiles", profileHandler.CreateProfile)
	r.GET("/api/profiles", profileHandler.ListProfiles)
	r.GET("/api/profiles/:id", profileHandler.GetProfile)

	authed := r.Group("/api", middleware.RequireAuth(deps.Issuer))

	tripHandler := handlers.NewTripHandler(deps.Trips)
	authed.POST("/trips", tripHandler.Create)
	authed.GET("/trips", tripHandler.List)
	authed.GET("/trips/:id", tripHandler.Get)
	authed.PUT("/trips/:id", tripHandler.Update)
	authed.DELETE("/trips/:id", tripHandler.Delete)

	authed.POST("/personas", profileHandler.CreatePersona)
	authed.GET("/personas", profileHandler.ListPersonas)
	authed.PUT("/personas/:id", profileHandler.UpdatePersona)
	authed.DELETE("/personas/:id", profileHandler.DeletePersona)

	assistantHandler := handlers.NewAssistantHandler(deps.Assistant)
	authed.POST("/assistant/chat", assistantHandler.Chat)
	authed.GET("/assistant/tokens", assistantHandler.Tokens)

	return r
}
