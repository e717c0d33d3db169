package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/kmureithi/devfolio/internal/forms"
	"github.com/kmureithi/devfolio/internal/logger"
	"github.com/kmureithi/devfolio/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type jobCard struct {
	Post  models.JobPost
	State ApplyState
}

func (s *Server) jobsPage(c *gin.Context) {
	account := currentAccount(c)

	posts := s.board.ListPosts(c.Request.Context())
	applied := s.board.AppliedPostIDs(c.Request.Context(), account)

	cards := lo.Map(posts, func(post models.JobPost, _ int) jobCard {
		return jobCard{Post: post, State: CardState(account, post.ID, applied)}
	})

	c.HTML(http.StatusOK, "jobs.html", gin.H{
		"cards":   cards,
		"account": account,
	})
}

func (s *Server) jobFormPage(c *gin.Context) {
	account := currentAccount(c)

	if account == nil {
		c.Redirect(http.StatusFound, "/log_in")
		return
	}

	if account.AccountType != models.Employer {
		c.HTML(http.StatusForbidden, "job-form.html", gin.H{
			"account": account,
			"form":    forms.JobPostForm{},
			"error":   "Only employer accounts can post jobs.",
		})
		return
	}

	c.HTML(http.StatusOK, "job-form.html", gin.H{"account": account, "form": forms.JobPostForm{}})
}

func (s *Server) createJob(c *gin.Context) {
	account := currentAccount(c)

	var form forms.JobPostForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "job-form.html", gin.H{
			"account": account,
			"form":    form,
			"error":   "Please review the form fields.",
		})
		return
	}

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "job-form.html", gin.H{
			"account": account,
			"form":    form,
			"error":   err.Error(),
		})
		return
	}

	post, err := form.ToModel(0)
	if err != nil {
		c.HTML(http.StatusBadRequest, "job-form.html", gin.H{
			"account": account,
			"form":    form,
			"error":   "Please review the form fields.",
		})
		return
	}

	if err := s.board.CreatePost(c.Request.Context(), account, post); err != nil {
		if errors.Is(err, services.ErrNotEmployer) {
			c.HTML(http.StatusForbidden, "job-form.html", gin.H{
				"account": account,
				"form":    form,
				"error":   "Only employer accounts can post jobs.",
			})
			return
		}

		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to create job post: %v", err)
		c.HTML(http.StatusInternalServerError, "job-form.html", gin.H{
			"account": account,
			"form":    form,
			"error":   "We couldn't save your job right now. Please try again.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/jobs")
}

func (s *Server) applyToJob(c *gin.Context) {
	account := currentAccount(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	_, err = s.board.Apply(c.Request.Context(), account, uint(postID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You have already applied to this job.",
				"state": CardState(account, uint(postID), map[uint]struct{}{uint(postID): {}}),
			})
		case errors.Is(err, services.ErrNotEligible):
			status := http.StatusForbidden
			if account == nil {
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": "Only employee accounts can apply to jobs."})
		case errors.Is(err, services.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job post not found."})
		default:
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to apply: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "We couldn't process your application. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": CardState(account, uint(postID), map[uint]struct{}{uint(postID): {}}),
	})
}
