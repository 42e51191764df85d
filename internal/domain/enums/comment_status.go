package enums

type CommentStatus string

const (
	CommentVisible CommentStatus = "visible"
	CommentRemoved CommentStatus = "removed"
)
