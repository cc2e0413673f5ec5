// Package middleware contains the route guards composed per route group:
// login-required, anonymous-only and admin-only.
package middleware

import (
	"net/http"

	"smoothblog/database/model"
	"smoothblog/web/service"
	"smoothblog/web/session"

	"github.com/gin-gonic/gin"
)

const loginUserKey = "LOGIN_USER"

// RequireLogin redirects unauthenticated requests to the login page. On
// success the user row is loaded fresh from the database and stored in the
// request context; a session pointing at a deleted user is cleared.
func RequireLogin() gin.HandlerFunc {
	userService := service.UserService{}
	return func(c *gin.Context) {
		userId, ok := session.GetLoginUserId(c)
		if !ok {
			session.Flash(c, "Please log in to access this page.", "info")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := userService.GetUser(userId)
		if err != nil {
			_ = session.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(loginUserKey, user)
		c.Next()
	}
}

// AnonymousOnly redirects already-authenticated users to the home page. Used
// on the login and registration routes.
func AnonymousOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.IsLogin(c) {
			session.Flash(c, "You are already logged in", "danger")
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireLogin. Non-admins are sent home with a
// generic permission-denied message regardless of the admin action attempted.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := ContextUser(c)
		if user == nil || !user.IsAdmin {
			session.Flash(c, "You do not have permissions to access that page.", "danger")
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ContextUser returns the user loaded by RequireLogin, or nil.
func ContextUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(loginUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
