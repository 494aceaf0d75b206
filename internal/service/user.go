package service

import (
	"SwapMarket/internal/apperr"
	"SwapMarket/internal/model"
	"SwapMarket/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrLoginTaken — email уже зарегистрирован.
	ErrLoginTaken = fmt.Errorf("login already taken: %w", apperr.ErrConflict)
	// ErrInvalidCredentials — неверная пара email/пароль.
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthorized)
)

// UserService регистрация, вход и профиль пользователя.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", apperr.ErrValidation)
	}

	existing, err := s.repo.GetUserByLogin(ctx, email)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	// параллельная регистрация могла занять email после проверки выше
	u, err := s.repo.CreateUser(ctx, &model.User{Name: name, Email: email, Password: string(hash)})
	if errors.Is(err, apperr.ErrConflict) {
		return nil, ErrLoginTaken
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Login проверяет пароль и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.repo.GetUserByLogin(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && u == nil) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Profile возвращает пользователя по id.
func (s *UserService) Profile(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}
