package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header заголовок, в котором передается идентификатор запроса
const Header = "X-Request-ID"

type ctxKey struct{}

// New генерирует новый идентификатор запроса
func New() string {
	return uuid.NewString()
}

// NewContext кладет идентификатор запроса в контекст
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достает идентификатор запроса, пустая строка если его нет
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
