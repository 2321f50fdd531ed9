package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hctseng/formcraft-go/handlers"
	"github.com/hctseng/formcraft-go/middleware"
	"github.com/hctseng/formcraft-go/services"
)

func RegisterRoutes(r *gin.Engine, svc *services.Services) {
	h := handlers.New(svc)

	api := r.Group("/api")

	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	// respondent-facing routes, no auth required; the render view doubles as
	// the owner detail view when a valid token is attached
	public := api.Group("/")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/forms/:slug", h.Form.Get)
		public.GET("/forms/:slug/client-schema", h.Form.ClientSchema)
		public.GET("/forms/:slug/check-access", h.Form.CheckAccess)
		public.POST("/forms/:slug/verify-access", h.Form.VerifyAccess)
		public.POST("/forms/:slug/submissions", h.Submission.Create)
		public.PUT("/forms/:slug/submissions/:id", h.Submission.SaveDraft)
		public.POST("/forms/:slug/submissions/:id/finalize", h.Submission.Finalize)
		public.POST("/forms/:slug/questions/:id/validate", h.Question.ValidateAnswer)
	}

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.List)
			forms.POST("", h.Form.Create)
			forms.PUT(":slug", h.Form.Update)
			forms.DELETE(":slug", h.Form.Delete)
			forms.PATCH(":slug/settings", h.Form.UpdateSettings)
			forms.POST(":slug/duplicate", h.Form.Duplicate)

			forms.GET(":slug/questions", h.Question.List)
			forms.POST(":slug/questions", h.Question.Create)
			forms.PUT(":slug/questions/:id", h.Question.Update)
			forms.DELETE(":slug/questions/:id", h.Question.Delete)
			forms.PATCH(":slug/questions/reorder", h.Question.Reorder)

			forms.GET(":slug/submissions", h.Submission.List)
			forms.GET(":slug/submissions/:id", h.Submission.Get)

			forms.GET(":slug/ratelimit/status", h.Form.RateLimitStatus)
			forms.POST(":slug/ratelimit/reset", h.Form.RateLimitReset)
		}
	}
}
