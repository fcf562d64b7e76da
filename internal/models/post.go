package models

import (
	"time"

	"github.com/baharkarakas/blog-backend/internal/api/validate"
)

type Post struct {
	ID       int64     `json:"id"`
	AuthorID int64     `json:"author_id"`
	Author   string    `json:"author"` // owning user's username, from the join
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Created  time.Time `json:"created"`
}

func (p *Post) Validate() error {
	var errs validate.Errs
	if e := validate.Required("title", p.Title); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MaxLen("title", p.Title, 200); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
