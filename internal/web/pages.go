package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmureithi/devfolio/internal/content"
)

func (s *Server) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":      content.Me,
		"experience":   content.Experience,
		"education":    content.Education,
		"projects":     content.Projects,
		"services":     content.Services,
		"testimonials": content.Testimonials,
		"account":      currentAccount(c),
	})
}

func (s *Server) policiesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "policies.html", gin.H{
		"policies": content.Policies,
		"account":  currentAccount(c),
	})
}
