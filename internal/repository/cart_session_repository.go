package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// セッションの永続化だけを約束。
// ストアにはセッションを1つだけ持つ（無ければトークンを発行して作る）。
type CartSessionRepository interface {
	GetOrCreate(ctx context.Context) (model.CartSession, error)
}
