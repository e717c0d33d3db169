package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmureithi/devfolio/internal/clients/directory"
	"github.com/kmureithi/devfolio/internal/forms"
	"github.com/kmureithi/devfolio/internal/logger"
	"github.com/kmureithi/devfolio/internal/services"
	log "github.com/sirupsen/logrus"
)

func (s *Server) signupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"form": forms.SignupForm{}})
}

func (s *Server) signup(c *gin.Context) {

	var form forms.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"error": "Please review the form fields.", "form": forms.SignupForm{}})
		return
	}

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"error": err.Error(), "form": form})
		return
	}

	_, err := s.registration.SignUp(c.Request.Context(), &form)
	if err != nil {
		var apiErr *directory.APIError
		switch {
		case errors.As(err, &apiErr):
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{"error": apiErr.Message(), "form": form})
		case errors.Is(err, services.ErrProfileSetupFailed):
			c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
				"error": "Account created but profile setup failed. Please contact support.",
				"form":  form,
			})
		default:
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDirectory).Errorf("sign-up failed: %v", err)
			c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
				"error": "An unexpected error occurred.", "form": form,
			})
		}
		return
	}

	c.HTML(http.StatusOK, "signup.html", gin.H{
		"success": "Success! Check your email to verify your account.",
		"form":    forms.SignupForm{},
	})
}

func (s *Server) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"form": forms.LoginForm{}})
}

func (s *Server) login(c *gin.Context) {

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": "Please review the form fields.", "form": forms.LoginForm{}})
		return
	}

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": err.Error(), "form": form})
		return
	}

	session, err := s.directory.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		var apiErr *directory.APIError
		if errors.As(err, &apiErr) && apiErr.IsAuthFailure() {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid login credentials.", "form": form})
			return
		}

		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDirectory).Errorf("sign-in failed: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "An unexpected error occurred.", "form": form})
		return
	}

	account, err := s.accounts.GetByDirectoryID(c.Request.Context(), session.User.ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load account: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "An unexpected error occurred.", "form": form})
		return
	}
	if account == nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Your profile is incomplete. Please contact support.",
			"form":  form,
		})
		return
	}

	s.sessions.Remember(session, account)

	maxAge := session.ExpiresIn
	if maxAge <= 0 {
		maxAge = 3600
	}
	c.SetCookie(sessionCookie, session.AccessToken, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/jobs")
}

func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		s.sessions.Forget(c.Request.Context(), token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) recoverPassword(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": "Email is required.", "form": forms.LoginForm{}})
		return
	}

	if err := s.directory.Recover(c.Request.Context(), email); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDirectory).Errorf("password recovery failed: %v", err)
	}

	// Same message regardless of outcome, so addresses cannot be probed.
	c.HTML(http.StatusOK, "login.html", gin.H{
		"success": "If that address exists, a reset link is on its way.",
		"form":    forms.LoginForm{},
	})
}

func (s *Server) googleSignIn(c *gin.Context) {
	c.Redirect(http.StatusFound, s.directory.OAuthURL("google", s.oauthURL))
}

// oauthCallback is the redirect target for the hosted OAuth flow; the
// directory appends tokens in the URL fragment, which never reaches the
// server, so the page itself completes the session client-side.
func (s *Server) oauthCallback(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
