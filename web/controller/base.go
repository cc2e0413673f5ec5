// Package controller provides the HTTP request handlers for the blog:
// registration, login, the admin pages and the post pages.
package controller

import (
	"smoothblog/database/model"
	"smoothblog/web/middleware"
	"smoothblog/web/service"
	"smoothblog/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides functionality shared by all controllers.
type BaseController struct {
	userService service.UserService
}

// currentUser returns the authenticated user for any route, whether or not a
// login guard already loaded it into the context.
func (a *BaseController) currentUser(c *gin.Context) *model.User {
	if user := middleware.ContextUser(c); user != nil {
		return user
	}
	userId, ok := session.GetLoginUserId(c)
	if !ok {
		return nil
	}
	user, err := a.userService.GetUser(userId)
	if err != nil {
		return nil
	}
	return user
}
