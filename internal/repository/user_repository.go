package repository

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
	"sanvii_backend/internal/util"
)

type UserRepository struct {
	kv store.KV
}

func NewUserRepository(kv store.KV) *UserRepository {
	return &UserRepository{kv: kv}
}

func (r *UserRepository) All(ctx context.Context) []model.User {
	return loadTable(ctx, r.kv, keyUsers, []model.User{})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.All(ctx) {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range r.All(ctx) {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, util.ErrUserNotFound
}

// Create 追加新用户。用户从不被删除
func (r *UserRepository) Create(ctx context.Context, user *model.User) {
	users := r.All(ctx)
	users = append(users, *user)
	saveTable(ctx, r.kv, keyUsers, users)
}
