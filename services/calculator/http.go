package calculator

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"skillscore-backend/lib/scrapers/skillsboost"
)

type calculateRequest struct {
	ProfileURL string `json:"profileUrl" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler builds the HTTP surface over the service. The handler is
// a plain http.Handler so the caller owns listening and shutdown.
func NewHandler(service *Service) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	api := engine.Group("/api")
	api.GET("/health", handleHealth)
	api.POST("/calculate-points", handleCalculatePoints(service))
	api.POST("/check-profile", handleCheckProfile(service))
	api.GET("/participants", handleParticipants(service))
	api.GET("/scoring-config", handleScoringConfig(service))

	return engine
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func handleCalculatePoints(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req calculateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "profileUrl is required"})
			return
		}

		result, err := service.CalculatePoints(c.Request.Context(), req.ProfileURL)
		if err != nil {
			status, message := classifyCalculateError(err)
			c.JSON(status, errorResponse{Error: message})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// classifyCalculateError maps pipeline errors onto the API contract.
// Private profiles get a distinct 403 message so the frontend can
// tell "fix your privacy settings" apart from "you are not enrolled".
func classifyCalculateError(err error) (int, string) {
	switch {
	case errors.Is(err, skillsboost.ErrInvalidURL):
		return http.StatusBadRequest, "invalid public profile url"
	case errors.Is(err, ErrNotEnrolled):
		return http.StatusForbidden, "profile is not enrolled in the program"
	case errors.Is(err, skillsboost.ErrPrivateProfile):
		return http.StatusForbidden, "profile is set to private, update visibility settings"
	default:
		return http.StatusInternalServerError, "failed to fetch profile: " + err.Error()
	}
}

func handleCheckProfile(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req calculateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "profileUrl is required"})
			return
		}

		result, err := service.CheckProfile(c.Request.Context(), req.ProfileURL)
		if err != nil {
			if errors.Is(err, skillsboost.ErrInvalidURL) {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid public profile url"})
				return
			}
			c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func handleParticipants(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"participants": service.Participants(),
		})
	}
}

func handleScoringConfig(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.ScoringConfig())
	}
}
