package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"costsite/pkg/markdown"
	"costsite/pkg/models"
	"costsite/pkg/services"
	"costsite/pkg/site"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Server holds what the handlers read from. Every request goes back to Repo,
// so content edits show up without a restart.
type Server struct {
	Repo       services.ArticleRepository
	Site       models.SiteConfig
	Markdown   markdown.Renderer
	Builder    *site.Builder
	ContentDir string
	StaticDir  string
	Log        *slog.Logger
	Now        func() time.Time
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

func (s *Server) ListArticles(c *gin.Context) {
	c.JSON(http.StatusOK, s.Repo.List())
}

func (s *Server) GetArticle(c *gin.Context) {
	slug := c.Query("slug")
	art, ok := s.Repo.Get(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"article": art,
		"html":    s.Markdown.Render(art.Content),
	})
}

func (s *Server) HandleBuild(c *gin.Context) {
	if s.Builder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Builder not configured"})
		return
	}
	rep, err := s.Builder.Build(c.Request.Context())
	if err != nil {
		s.logger().Error("build failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "report": rep})
}

func (s *Server) HandleSync(c *gin.Context) {
	log, err := services.SyncRepo(sessionToken(c))
	if err != nil {
		s.logger().Error("sync failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}

func (s *Server) HandlePublish(c *gin.Context) {
	log, err := services.PublishRepo(sessionToken(c))
	if err != nil {
		s.logger().Error("publish failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}

func (s *Server) CreateArticle(c *gin.Context) {
	var req struct {
		Slug   string `json:"slug"`
		Format string `json:"format"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	path, err := services.CreateArticle(s.ContentDir, req.Slug, req.Format, s.now())
	switch {
	case errors.Is(err, services.ErrSlugExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrInvalidSlug), errors.Is(err, services.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		s.logger().Error("create article failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create failed"})
		return
	}

	s.logger().Info("article created", slog.String("slug", req.Slug), slog.String("path", path))
	c.JSON(http.StatusOK, gin.H{"status": "created", "slug": req.Slug})
}

func (s *Server) ListAssets(c *gin.Context) {
	files, err := services.ListAssets(s.StaticDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, files)
}

func sessionToken(c *gin.Context) string {
	token, _ := sessions.Default(c).Get(sessionTokenKey).(string)
	return token
}
