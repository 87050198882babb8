package usecase

import (
	"time"

	authdomain "wanderlist-backend/internal/auth/domain"
	authdto "wanderlist-backend/internal/auth/dto"
	"wanderlist-backend/internal/auth/repository"
	"wanderlist-backend/pkg/apperr"
	"wanderlist-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
	now      func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		now:      time.Now,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to check existing user")
	}
	if existing != nil {
		return nil, apperr.New(apperr.CodeConflict, "user already exists")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to hash password")
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to create user")
	}

	token, err := u.issueToken(user.ID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to issue token")
	}

	return &authdto.RegisterResponse{ID: user.ID, Name: user.Name, Token: token}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to look up user")
	}

	// Same response for unknown email and wrong password, so callers
	// cannot probe which addresses are registered.
	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.New(apperr.CodeUnauthorized, "invalid email or password")
	}

	token, err := u.issueToken(user.ID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to issue token")
	}

	return &authdto.LoginResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}

func (u *authUsecase) GetProfile(userID string) (*authdto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to look up user")
	}
	if user == nil {
		return nil, apperr.New(apperr.CodeNotFound, "user not found")
	}

	return &authdto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (u *authUsecase) issueToken(userID string) (string, error) {
	now := u.now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(u.config.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.CodeUnauthorized, "unexpected signing method")
		}
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithTimeFunc(u.now))

	if err != nil || !token.Valid {
		return nil, apperr.New(apperr.CodeUnauthorized, "invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.New(apperr.CodeUnauthorized, "invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperr.New(apperr.CodeUnauthorized, "invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to look up user")
	}
	if user == nil {
		// Valid token for a deleted account still fails closed.
		return nil, apperr.New(apperr.CodeUnauthorized, "user not found")
	}

	return user, nil
}
