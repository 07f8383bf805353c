package service

import (
	"context"
	"errors"
	"fmt"

	"sanvii_backend/internal/config"
	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo    *repository.UserRepository
	ProfileRepo *repository.ProfileRepository
	SessionRepo *repository.SessionRepository
	Cfg         *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository, sessionRepo *repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		SessionRepo: sessionRepo,
		Cfg:         cfg,
	}
}

// Register 注册新用户并建立空的职业档案
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.NewID("u"),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Avatar:       fmt.Sprintf("https://picsum.photos/seed/%s/200", email),
		CreatedAt:    model.NowMillis(),
	}
	s.UserRepo.Create(ctx, user)
	s.ProfileRepo.Save(ctx, model.DefaultProfile(user.ID))

	return user, nil
}

// Login 凭据不匹配时不建立任何会话
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	// 会话恢复记录：页面刷新后凭token找回身份
	s.SessionRepo.Put(ctx, token, user.ID)

	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) {
	s.SessionRepo.Delete(ctx, token)
}

// RestoreSession 根据会话记录恢复当前登录用户
func (s *AuthService) RestoreSession(ctx context.Context, token string) (*model.User, error) {
	rec, ok := s.SessionRepo.Get(ctx, token)
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return s.UserRepo.FindByID(ctx, rec.UserID)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
