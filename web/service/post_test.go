package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPostsNewestFirst(t *testing.T) {
	setupDB(t)

	userService := UserService{}
	postService := PostService{}

	user, err := userService.CreateUser("test@email.com", "test", "test")
	require.NoError(t, err)

	first, err := postService.CreatePost("first", "first content", user.Id)
	require.NoError(t, err)
	second, err := postService.CreatePost("second", "second content", user.Id)
	require.NoError(t, err)

	posts, err := postService.GetPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.Id, posts[0].Id)
	assert.Equal(t, first.Id, posts[1].Id)

	// Owners come preloaded
	assert.Equal(t, "test", posts[0].User.Username)
}

func TestDeletePostAsOwner(t *testing.T) {
	setupDB(t)

	userService := UserService{}
	postService := PostService{}

	user, err := userService.CreateUser("test@email.com", "test", "test")
	require.NoError(t, err)
	post, err := postService.CreatePost("test title", "test content", user.Id)
	require.NoError(t, err)

	require.NoError(t, postService.DeletePost(post.Id, user))

	posts, err := postService.GetPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestDeletePostDenied(t *testing.T) {
	setupDB(t)

	userService := UserService{}
	postService := PostService{}

	owner, err := userService.CreateUser("test@email.com", "test", "test")
	require.NoError(t, err)
	stranger, err := userService.CreateUser("other@email.com", "other", "other")
	require.NoError(t, err)

	post, err := postService.CreatePost("test title", "test content", owner.Id)
	require.NoError(t, err)

	err = postService.DeletePost(post.Id, stranger)
	assert.ErrorIs(t, err, ErrPostNotAllowed)

	// Post is still there
	posts, err := postService.GetPosts()
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	// A missing post id gets the same denial
	err = postService.DeletePost(9999, stranger)
	assert.ErrorIs(t, err, ErrPostNotAllowed)
}

func TestDeletePostAsAdmin(t *testing.T) {
	setupDB(t)

	userService := UserService{}
	postService := PostService{}

	owner, err := userService.CreateUser("test@email.com", "test", "test")
	require.NoError(t, err)
	post, err := postService.CreatePost("test title", "test content", owner.Id)
	require.NoError(t, err)

	admin, err := userService.CheckUser("admin@email.com", "admin")
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)

	require.NoError(t, postService.DeletePost(post.Id, admin))

	posts, err := postService.GetPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}
