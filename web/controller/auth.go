package controller

import (
	"errors"
	"fmt"
	"strconv"

	"smoothblog/logger"
	"smoothblog/web/middleware"
	"smoothblog/web/service"
	"smoothblog/web/session"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login, logout and the admin pages.
type AuthController struct {
	BaseController
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	anonymous := g.Group("/", middleware.AnonymousOnly())
	anonymous.GET("/register", a.registerPage)
	anonymous.POST("/register", a.register)
	anonymous.GET("/login", a.loginPage)
	anonymous.POST("/login", a.login)

	g.GET("/logout", middleware.RequireLogin(), a.logout)

	admin := g.Group("/admin", middleware.RequireLogin(), middleware.RequireAdmin())
	admin.GET("", a.admin)
	admin.GET("/delete/:userId", a.deleteUser)
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil, gin.H{"form": RegisterForm{}})
}

// register creates a new non-admin user. Duplicate email or username is
// reported with one generic message so the colliding field is not leaked.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		flashFormErrors(c, err)
		html(c, "register.html", "Register", nil, gin.H{"form": form})
		return
	}

	user, err := a.userService.CreateUser(form.Email, form.Username, form.Password)
	if errors.Is(err, service.ErrUserExists) {
		session.Flash(c, "User with the same username or email already exists.", "danger")
		html(c, "register.html", "Register", nil, gin.H{"form": form})
		return
	}
	if err != nil {
		logger.Warning("create user err:", err)
		session.Flash(c, "Registration failed, try again later.", "danger")
		html(c, "register.html", "Register", nil, gin.H{"form": form})
		return
	}

	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s registered, IP: %s", user.Username, getRemoteIp(c))
	session.Flash(c, fmt.Sprintf("Welcome, %s!", user.Username), "success")
	redirect(c, "/home")
}

func (a *AuthController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", nil, gin.H{"form": LoginForm{}})
}

// login authenticates by email. The two failure messages stay distinguishable
// on purpose, unlike registration's generic duplicate message.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		flashFormErrors(c, err)
		html(c, "login.html", "Login", nil, gin.H{"form": form})
		return
	}

	user, err := a.userService.CheckUser(form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			session.Flash(c, "User does not exist.", "danger")
		case errors.Is(err, service.ErrWrongPassword):
			logger.Warningf("wrong password for %q, IP: %s", form.Email, getRemoteIp(c))
			session.Flash(c, "Incorrect password, try again.", "danger")
		default:
			logger.Warning("check user err:", err)
			session.Flash(c, "Login failed, try again later.", "danger")
		}
		html(c, "login.html", "Login", nil, gin.H{"form": form})
		return
	}

	if form.Remember {
		if err := session.SetMaxAge(c, session.RememberMaxAge); err != nil {
			logger.Warning("unable to set session max age:", err)
		}
	}
	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	session.Flash(c, fmt.Sprintf("Welcome back, %s!", user.Username), "success")
	if user.IsAdmin {
		redirect(c, "/admin")
		return
	}
	redirect(c, "/home")
}

func (a *AuthController) logout(c *gin.Context) {
	if user := middleware.ContextUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	redirect(c, "/home")
}

// admin lists every user, unfiltered.
func (a *AuthController) admin(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		logger.Warning("list users err:", err)
	}
	html(c, "admin.html", "Admin", middleware.ContextUser(c), gin.H{"users": users})
}

// deleteUser removes the target user and all its posts in one transaction.
// Both outcomes land back on the admin listing.
func (a *AuthController) deleteUser(c *gin.Context) {
	userId, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		session.Flash(c, "User does not exist", "danger")
		redirect(c, "/admin")
		return
	}

	err = a.userService.DeleteUser(userId)
	if errors.Is(err, service.ErrUserNotFound) {
		session.Flash(c, "User does not exist", "danger")
	} else if err != nil {
		logger.Warning("delete user err:", err)
		session.Flash(c, "User could not be deleted.", "danger")
	} else {
		logger.Infof("user %d deleted by %s", userId, middleware.ContextUser(c).Username)
	}
	redirect(c, "/admin")
}
