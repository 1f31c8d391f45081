package repository

import (
	"app/internal/domain/model"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CartSessionGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartSessionGormRepository(db *gorm.DB) *CartSessionGormRepository {
	return &CartSessionGormRepository{db: db}
}

// ストアの唯一のセッションを取得し、無ければトークンを発行して作成
func (r *CartSessionGormRepository) GetOrCreate(ctx context.Context) (model.CartSession, error) {
	var session model.CartSession

	//トランザクションで探す→無ければ作る
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Order("created_at asc").
			First(&session).Error

		if findErr == nil {
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る
		token, err := newSessionToken()
		if err != nil {
			return err
		}

		now := time.Now()
		newSession := model.CartSession{
			ID:        token,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.Create(&newSession).Error; err != nil {
			return err
		}

		session = newSession
		return nil
	})

	if err != nil {
		return model.CartSession{}, err
	}
	return session, nil
}

// 32バイトのランダム値をURLセーフBase64でトークン化
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
