package model

import "time"

// User is an account that can log in and write posts. Password always holds
// the bcrypt hash, never the plaintext.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" gorm:"size:320;uniqueIndex;not null"`
	Username string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:60;not null"`
	IsAdmin  bool   `json:"isAdmin" gorm:"default:false"`
}

// Post is a blog entry owned by exactly one user.
type Post struct {
	Id      int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title   string    `json:"title" gorm:"size:500;not null"`
	Content string    `json:"content" gorm:"type:text;not null"`
	Date    time.Time `json:"date" gorm:"autoCreateTime"`
	UserId  int       `json:"userId"`
	User    User      `json:"user" gorm:"foreignKey:UserId;references:Id"`
}
