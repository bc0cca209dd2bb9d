package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"costsite/pkg/seo"
	"costsite/pkg/services"
	"costsite/pkg/site"

	"github.com/gin-gonic/gin"
)

func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", site.NewIndexPage(s.Site, "/", s.Site.Title, s.Repo.List().Articles))
}

func (s *Server) Articles(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", site.NewIndexPage(s.Site, "/articles/", "All articles", s.Repo.List().Articles))
}

func (s *Server) Article(c *gin.Context) {
	art, ok := s.Repo.Get(c.Param("slug"))
	if !ok {
		s.NotFound(c)
		return
	}
	c.HTML(http.StatusOK, "article.html", site.NewArticlePage(s.Site, art, s.Markdown))
}

func (s *Server) Calculators(c *gin.Context) {
	c.HTML(http.StatusOK, "calculators.html", site.NewCalculatorsPage(s.Site))
}

func (s *Server) Calculator(c *gin.Context) {
	calc, ok := site.FindCalculator(s.Site, c.Param("slug"))
	if !ok {
		s.NotFound(c)
		return
	}
	c.HTML(http.StatusOK, "calculator.html", site.NewCalculatorPage(s.Site, calc))
}

func (s *Server) RSS(c *gin.Context) {
	feed := seo.BuildRSS(s.Site, s.Repo.List().Articles, s.now())
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(feed))
}

func (s *Server) Sitemap(c *gin.Context) {
	sitemap := seo.BuildSitemap(s.Site, s.Repo.List().Articles, s.now())
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(sitemap))
}

func (s *Server) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(seo.BuildRobots(s.Site)))
}

// NotFound serves a static asset when one matches the path, the 404 page
// otherwise.
func (s *Server) NotFound(c *gin.Context) {
	if s.StaticDir != "" && c.Request.Method == http.MethodGet {
		fullPath := services.SafeJoin(s.StaticDir, "", filepath.FromSlash(strings.TrimPrefix(c.Request.URL.Path, "/")))
		if fullPath != "" {
			if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
				c.File(fullPath)
				return
			}
		}
	}
	c.HTML(http.StatusNotFound, "404.html", site.NewNotFoundPage(s.Site))
}
