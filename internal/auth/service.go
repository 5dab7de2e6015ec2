package auth

import (
	"log/slog"

	"github.com/mauriciopaint/backoffice/internal"
	"golang.org/x/crypto/bcrypt"
)

type UserRepositoryAPI interface {
	GetByUsername(username string) (*User, error)
	Create(user *User) error
}

type Service struct {
	users      UserRepositoryAPI
	issuer     *TokenIssuer
	bcryptCost int
	logger     *slog.Logger
}

func NewService(users UserRepositoryAPI, issuer *TokenIssuer, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Authenticate verifies the credentials and issues a signed access token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(dto LoginDTO) (string, error) {
	if err := dto.Validate(); err != nil {
		return "", err
	}

	user, err := s.users.GetByUsername(dto.Username)
	if err != nil {
		s.logger.Error("failed to load user", "username", dto.Username, "error", err)
		return "", internal.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return "", internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return "", internal.ErrInvalidCredentials
	}

	token, err := s.issuer.Sign(user.Username)
	if err != nil {
		s.logger.Error("failed to sign token", "username", dto.Username, "error", err)
		return "", internal.NewInternalError("failed to sign token", err)
	}

	s.logger.Info("user authenticated", "username", user.Username)
	return token, nil
}

// ResolveToken verifies a raw token and resolves its subject to a stored
// user. This is the last step of the request gate.
func (s *Service) ResolveToken(tokenString string) (*User, error) {
	claims, err := s.issuer.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	username := claims.Subject
	if username == "" {
		return nil, internal.ErrInvalidToken
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		s.logger.Error("failed to load user for token", "username", username, "error", err)
		return nil, internal.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, internal.ErrInvalidToken
	}
	return user, nil
}

func (s *Service) TokenTTL() int {
	return int(s.issuer.TTL().Seconds())
}

// HashPassword creates a bcrypt hash, used by the seeder.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
