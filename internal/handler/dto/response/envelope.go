package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// Envelope wraps every successful body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// copyFrom maps a read model onto a response type with matching field names.
func copyFrom[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
	return dst
}

func copyAll[T any, S any](src []S) []*T {
	out := make([]*T, len(src))
	for i, s := range src {
		out[i] = copyFrom[T](s)
	}
	return out
}
