package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUserId = "LOGIN_USER_ID"
	flashKey    = "FLASHES"
)

// RememberMaxAge keeps the session cookie alive across browser restarts when
// the user checks "remember me".
const RememberMaxAge = 30 * 24 * 60 * 60

// FlashMessage is a one-time message rendered on the next page.
type FlashMessage struct {
	Message  string
	Category string
}

func init() {
	gob.Register([]FlashMessage{})
}

// SetLoginUser stores the authenticated user's id in the session. The user
// record itself is reloaded from the database on each request.
func SetLoginUser(c *gin.Context, userId int) error {
	s := sessions.Default(c)
	s.Set(loginUserId, userId)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	if obj := s.Get(loginUserId); obj != nil {
		if id, ok := obj.(int); ok {
			return id, true
		}
	}
	return 0, false
}

func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserId(c)
	return ok
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// Flash queues a one-time message for the next rendered page.
func Flash(c *gin.Context, message string, category string) {
	s := sessions.Default(c)
	var flashes []FlashMessage
	if obj := s.Get(flashKey); obj != nil {
		if existing, ok := obj.([]FlashMessage); ok {
			flashes = existing
		}
	}
	flashes = append(flashes, FlashMessage{Message: message, Category: category})
	s.Set(flashKey, flashes)
	_ = s.Save()
}

// GetFlashes returns and clears the queued flash messages.
func GetFlashes(c *gin.Context) []FlashMessage {
	s := sessions.Default(c)
	obj := s.Get(flashKey)
	if obj == nil {
		return nil
	}
	s.Delete(flashKey)
	_ = s.Save()
	flashes, ok := obj.([]FlashMessage)
	if !ok {
		return nil
	}
	return flashes
}
