package controller

import (
	"net"
	"net/http"
	"strings"

	"smoothblog/database/model"
	"smoothblog/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders the named template with the pending flash messages and the
// current user merged into the template data.
func html(c *gin.Context, name string, title string, user *model.User, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["flashes"] = session.GetFlashes(c)
	data["user"] = user
	c.HTML(http.StatusOK, name, data)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
