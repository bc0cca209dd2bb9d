package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"

	"costsite/pkg/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const (
	sessionTokenKey = "access_token"
	sessionStateKey = "oauth_state"
)

// AuthRequired guards the admin API. API callers get a JSON 401, browsers
// are sent to the GitHub login.
func AuthRequired(c *gin.Context) {
	if sessions.Default(c).Get(sessionTokenKey) == nil {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

func GithubLogin(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.String(http.StatusInternalServerError, "State generation failed")
		return
	}
	state := hex.EncodeToString(buf)

	session := sessions.Default(c)
	session.Set(sessionStateKey, state)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "Session save failed")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, config.OauthConf.AuthCodeURL(state, oauth2.AccessTypeOffline))
}

func AuthCallback(c *gin.Context) {
	session := sessions.Default(c)
	want, _ := session.Get(sessionStateKey).(string)
	if want == "" || c.Query("state") != want {
		c.String(http.StatusBadRequest, "OAuth state mismatch")
		return
	}
	session.Delete(sessionStateKey)

	token, err := config.OauthConf.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.String(http.StatusInternalServerError, "OAuth Exchange Failed")
		return
	}

	session.Set(sessionTokenKey, token.AccessToken)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "Session save failed")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/")
}
