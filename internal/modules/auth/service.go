package auth

import (
	"context"
	"errors"

	"drivemind/internal/domain"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	tokenPrefix = "dummy-token-for-"
)

// Service contains all business logic for authentication.
type Service struct {
	admins AdminRepositoryInterface
	users  UserRepositoryInterface
}

func NewService(admins AdminRepositoryInterface, users UserRepositoryInterface) *Service {
	return &Service{admins: admins, users: users}
}

// Register creates a new user. Username is checked before email, so a request
// that clashes on both reports the username conflict.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	// Password is persisted verbatim. Known defect: the legacy rows are
	// plaintext and login compares exact strings, so hashing new rows
	// would lock every new account out.
	user := &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the username among admins first, then users, and compares
// the stored password by plain string equality.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var (
		stored string
		role   string
	)

	admin, err := s.admins.GetByUsername(ctx, username)
	switch {
	case err == nil:
		stored = admin.Password
		role = RoleAdmin
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		stored = user.Password
		role = RoleUser
	default:
		return nil, err
	}

	if password != stored {
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{
		AccessToken: tokenPrefix + username,
		TokenType:   "bearer",
		Role:        role,
	}, nil
}
