package controller

import (
	"errors"
	"strconv"

	"smoothblog/logger"
	"smoothblog/web/middleware"
	"smoothblog/web/service"
	"smoothblog/web/session"

	"github.com/gin-gonic/gin"
)

// BlogController handles the post listing and post create/delete routes.
type BlogController struct {
	BaseController

	postService service.PostService
}

func NewBlogController(g *gin.RouterGroup) *BlogController {
	a := &BlogController{}
	a.initRouter(g)
	return a
}

func (a *BlogController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/home", a.home)
	g.GET("/about", a.about)

	authenticated := g.Group("/", middleware.RequireLogin())
	authenticated.GET("/create", a.createPage)
	authenticated.POST("/create", a.create)
	authenticated.GET("/delete/:postId", a.deletePost)
}

func (a *BlogController) index(c *gin.Context) {
	redirect(c, "/home")
}

// home lists all posts with their authors, newest first.
func (a *BlogController) home(c *gin.Context) {
	posts, err := a.postService.GetPosts()
	if err != nil {
		logger.Warning("list posts err:", err)
	}
	html(c, "home.html", "Home", a.currentUser(c), gin.H{"posts": posts})
}

func (a *BlogController) about(c *gin.Context) {
	html(c, "about.html", "About", a.currentUser(c), nil)
}

func (a *BlogController) createPage(c *gin.Context) {
	html(c, "create.html", "New Blog", middleware.ContextUser(c), gin.H{"form": CreateForm{}})
}

func (a *BlogController) create(c *gin.Context) {
	user := middleware.ContextUser(c)

	var form CreateForm
	if err := c.ShouldBind(&form); err != nil {
		flashFormErrors(c, err)
		html(c, "create.html", "New Blog", user, gin.H{"form": form})
		return
	}

	if _, err := a.postService.CreatePost(form.Title, form.Content, user.Id); err != nil {
		logger.Warning("create post err:", err)
		session.Flash(c, "Blog could not be created.", "danger")
		html(c, "create.html", "New Blog", user, gin.H{"form": form})
		return
	}

	session.Flash(c, "Blog successfully created!", "success")
	redirect(c, "/home")
}

// deletePost deletes the post if the requester owns it or is an admin. A
// missing post and a forbidden one get the same denial message.
func (a *BlogController) deletePost(c *gin.Context) {
	user := middleware.ContextUser(c)

	postId, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		session.Flash(c, "Blog cannot be deleted.", "danger")
		redirect(c, "/home")
		return
	}

	err = a.postService.DeletePost(postId, user)
	if errors.Is(err, service.ErrPostNotAllowed) {
		session.Flash(c, "Blog cannot be deleted.", "danger")
	} else if err != nil {
		logger.Warning("delete post err:", err)
		session.Flash(c, "Blog cannot be deleted.", "danger")
	}
	redirect(c, "/home")
}
