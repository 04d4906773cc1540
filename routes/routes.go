package routes

import (
	"atelier/auth"
	"atelier/blog"
	"atelier/contact"
	"atelier/instagram"
	"atelier/middleware"
	"atelier/newsletter"
	"atelier/ratelim"
	"atelier/sitesettings"
	"atelier/team"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	// These sit exactly on the gate's exempt paths; anything else under
	// /admin is redirected when the session cookie is missing.
	router.POST(middleware.RegisterPath, rl.Limit(h.Register))
	router.POST(middleware.LoginPath, rl.Limit(h.Login))
	router.POST("/admin/logout", h.Logout)
}

func AddBlogRoutes(router *httprouter.Router, h *blog.Handler, s *middleware.Session) {
	// public, read-only
	router.GET("/api/blog", h.GetPosts)
	router.GET("/api/blog/post/:id", h.GetPost)
	router.GET("/api/blog/slug/:slug", h.GetPostBySlug)

	// admin mutations
	router.POST("/admin/api/blog", s.Authenticate(h.CreatePost))
	router.PUT("/admin/api/blog/:id", s.Authenticate(h.UpdatePost))
	router.DELETE("/admin/api/blog/:id", s.Authenticate(h.DeletePost))
}

func AddTeamRoutes(router *httprouter.Router, h *team.Handler, s *middleware.Session) {
	router.GET("/api/team", h.GetMembers)
	router.GET("/api/team/member/:id", h.GetMember)
	router.GET("/api/team/slug/:slug", h.GetMemberBySlug)

	router.POST("/admin/api/team", s.Authenticate(h.CreateMember))
	router.PUT("/admin/api/team/:id", s.Authenticate(h.UpdateMember))
	router.DELETE("/admin/api/team/:id", s.Authenticate(h.DeleteMember))
}

func AddInstagramRoutes(router *httprouter.Router, h *instagram.Handler, s *middleware.Session) {
	router.GET("/api/instagram", h.GetPosts)
	router.GET("/api/instagram/stats", h.GetStats)
	router.GET("/api/instagram/post/:id", h.GetPost)

	router.POST("/admin/api/instagram", s.Authenticate(h.CreatePost))
	router.POST("/admin/api/instagram/seed", s.Authenticate(h.Seed))
	router.PUT("/admin/api/instagram/:id", s.Authenticate(h.UpdatePost))
	router.DELETE("/admin/api/instagram/:id", s.Authenticate(h.DeletePost))
}

func AddNewsletterRoutes(router *httprouter.Router, h *newsletter.Handler, s *middleware.Session, rl *ratelim.RateLimiter) {
	router.POST("/api/newsletter", rl.Limit(h.Subscribe))

	router.GET("/admin/api/newsletter", s.Authenticate(h.GetSubscribers))
	router.DELETE("/admin/api/newsletter/:id", s.Authenticate(h.DeleteSubscriber))
}

func AddSettingsRoutes(router *httprouter.Router, h *sitesettings.Handler, s *middleware.Session) {
	router.GET("/api/settings", h.Get)
	router.PUT("/admin/api/settings", s.Authenticate(h.Update))
}

func AddContactRoutes(router *httprouter.Router, h *contact.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(h.Submit))
}
