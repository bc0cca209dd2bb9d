package handlers

import (
	"crypto/rand"
	"log/slog"

	"costsite/pkg/site"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the public pages, the read API and the admin API.
// An empty secret gets a random per-process session key.
func NewRouter(s *Server, sessionSecret string) *gin.Engine {
	r := gin.Default()

	secret := []byte(sessionSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
		s.logger().Warn("SESSION_SECRET not set, admin sessions will not survive a restart")
	}
	r.Use(sessions.Sessions("costsite", cookie.NewStore(secret)))
	r.SetHTMLTemplate(site.Templates())

	// --- Site ---
	r.GET("/", s.Index)
	r.GET("/articles/", s.Articles)
	r.GET("/article/:slug/", s.Article)
	r.GET("/calculators/", s.Calculators)
	r.GET("/calculators/:slug/", s.Calculator)
	r.GET("/rss.xml", s.RSS)
	r.GET("/sitemap.xml", s.Sitemap)
	r.GET("/robots.txt", s.Robots)
	r.NoRoute(s.NotFound)

	// --- Auth ---
	r.GET("/login", GithubLogin)
	r.GET("/auth/callback", AuthCallback)
	r.GET("/logout", Logout)

	api := r.Group("/api")
	{
		api.GET("/articles", s.ListArticles)
		api.GET("/article", s.GetArticle)

		admin := api.Group("/")
		admin.Use(AuthRequired)
		{
			admin.POST("/build", s.HandleBuild)
			admin.POST("/sync", s.HandleSync)
			admin.POST("/publish", s.HandlePublish)
			admin.POST("/create", s.CreateArticle)
			admin.GET("/assets", s.ListAssets)
		}
	}

	s.logger().Debug("routes registered", slog.Int("count", len(r.Routes())))
	return r
}
