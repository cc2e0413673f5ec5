package service

import (
	"errors"

	"smoothblog/database"
	"smoothblog/database/model"
)

// ErrPostNotAllowed covers both a missing post and a requester who is neither
// the owner nor an admin. The two cases are deliberately not distinguished.
var ErrPostNotAllowed = errors.New("post cannot be deleted")

type PostService struct{}

// GetPosts returns all posts with their owners, newest first.
func (s *PostService) GetPosts() ([]*model.Post, error) {
	db := database.GetDB()

	var posts []*model.Post
	err := db.Model(model.Post{}).
		Preload("User").
		Order("date DESC, id DESC").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) CreatePost(title string, content string, userId int) (*model.Post, error) {
	post := &model.Post{
		Title:   title,
		Content: content,
		UserId:  userId,
	}
	err := database.GetDB().Create(post).Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post if the requester owns it or is an admin.
func (s *PostService) DeletePost(id int, requester *model.User) error {
	db := database.GetDB()

	post := &model.Post{}
	err := db.Where("id = ?", id).First(post).Error
	if database.IsNotFound(err) {
		return ErrPostNotAllowed
	} else if err != nil {
		return err
	}

	if !requester.IsAdmin && requester.Id != post.UserId {
		return ErrPostNotAllowed
	}
	return db.Delete(post).Error
}
