// Package services содержит логику бизнес-уровня для работы с пользователями
// и аутентификацией: регистрацию, вход по паролю с выдачей токена доступа
// и полную проверку предъявленного токена вплоть до поиска субъекта в базе.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/password"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// Ошибки аутентификации. Обработчики транслируют каждую из них в 401
// с заголовком WWW-Authenticate: Bearer.
var (
	// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
	// Неизвестный пользователь и неверный пароль неразличимы для клиента.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken возвращается при неверной подписи или повреждённом токене.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired возвращается для просроченного токена.
	ErrTokenExpired = errors.New("token expired")
	// ErrUnknownSubject возвращается, если субъект валидного токена
	// отсутствует в базе.
	ErrUnknownSubject = errors.New("unknown token subject")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку токенов доступа.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	hasher   *password.Hasher
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, hasher *password.Hasher) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		hasher:   hasher,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Конфликт уникальности username или email пробрасывается как
// repository.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (int64, error) {
	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return 0, err
	}
	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и выдает токен доступа.
// Любой дефект учётных данных даёт ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}

// Authorize выполняет полную проверку токена доступа: подпись, срок действия
// и поиск субъекта в базе. Возвращает пользователя либо типизированную
// причину отказа.
func (s *AuthService) Authorize(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	user, err := s.users.GetUserByUsername(ctx, claims.Username())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, fmt.Errorf("authorize: %w", err)
	}
	return user, nil
}
