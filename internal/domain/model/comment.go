package model

import "github.com/knife-media/watchcat/internal/domain/enums"

type Comment struct {
	ID      int64
	PostID  int64
	UserID  int64
	Content string
	Status  enums.CommentStatus
}
