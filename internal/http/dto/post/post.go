// Package post contiene los DTOs del feed: posts, comentarios y likes.
package post

import (
	"fmt"
	"strings"
)

const maxBodyLen = 5000

type PublishRequest struct {
	Body string `json:"post"`
}

func (r *PublishRequest) Validate() error {
	r.Body = strings.TrimSpace(r.Body)
	if r.Body == "" {
		return fmt.Errorf("post body is required")
	}
	if len(r.Body) > maxBodyLen {
		return fmt.Errorf("post body too long (max %d chars)", maxBodyLen)
	}
	return nil
}

type UpdateRequest struct {
	Body string `json:"post"`
}

func (r *UpdateRequest) Validate() error {
	r.Body = strings.TrimSpace(r.Body)
	if r.Body == "" {
		return fmt.Errorf("post body is required")
	}
	if len(r.Body) > maxBodyLen {
		return fmt.Errorf("post body too long (max %d chars)", maxBodyLen)
	}
	return nil
}

type CommentRequest struct {
	Body string `json:"comment"`
}

func (r *CommentRequest) Validate() error {
	r.Body = strings.TrimSpace(r.Body)
	if r.Body == "" {
		return fmt.Errorf("comment body is required")
	}
	if len(r.Body) > maxBodyLen {
		return fmt.Errorf("comment too long (max %d chars)", maxBodyLen)
	}
	return nil
}
