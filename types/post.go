package types

import "time"

// Post represents a blog entry authored by a user.
type Post struct {
	// ID is the unique identifier of the post.
	ID int `json:"id" db:"id"`

	// AuthorID references the user that created the post. Only that
	// user may update or delete it.
	AuthorID int `json:"author_id" db:"author_id"`

	// Title is the post headline. It is required on create and update.
	Title string `json:"title" db:"title"`

	// Body is the post text. It may be empty.
	Body string `json:"body" db:"body"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at" db:"created"`

	// AuthorName is the author's username, populated on reads that
	// join the user table. It is not a column of the post table.
	AuthorName string `json:"author_name" db:"username"`
}
