package models

import "time"

type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	CommentUK    string    `json:"comment_uk"`
	CommentRU    string    `json:"comment_ru"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r Review) Comment(lang string) string {
	if lang == "ru" {
		return r.CommentRU
	}
	return r.CommentUK
}
