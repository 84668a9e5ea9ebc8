package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/ctxkeys"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/plebtools/plebtools/internal/repository"
	"github.com/plebtools/plebtools/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const SessionCookieName = "session"

type AuthService struct {
	userRepository repository.UserRepository
	email          EmailSender
	sessionSecret  string
	sessionExpiry  time.Duration
	isProduction   bool
}

func NewAuthService(
	userRepository repository.UserRepository,
	email EmailSender,
	sessionSecret string,
	sessionExpiry time.Duration,
	isProduction bool,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		email:          email,
		sessionSecret:  sessionSecret,
		sessionExpiry:  sessionExpiry,
		isProduction:   isProduction,
	}
}

// Register creates an unverified account and fires the verification and
// newsletter welcome emails after the row is committed. The returned bool
// reports whether a verification email was attempted; email delivery never
// affects the outcome.
func (s *AuthService) Register(username, email, password string, newsletterOptIn bool) (*model.User, bool, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validation.ValidateUsername(username); err != nil {
		return nil, false, apperr.Validation(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, false, apperr.Validation(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, false, apperr.Validation(err.Error())
	}

	_, err := s.userRepository.ByUsername(username)
	if err == nil {
		return nil, false, apperr.Conflict("Username already exists")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, apperr.Persistence("Failed to create account", err)
	}

	if email != "" {
		_, err = s.userRepository.ByEmail(email)
		if err == nil {
			return nil, false, apperr.Conflict("Email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, apperr.Persistence("Failed to create account", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, apperr.Persistence("Failed to create account", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, false, apperr.Persistence("Failed to create account", err)
	}

	user := &model.User{
		Username:             username,
		PasswordHash:         string(hash),
		VerificationToken:    &token,
		NewsletterSubscribed: newsletterOptIn,
		CreatedAt:            time.Now().UTC(),
	}
	if email != "" {
		user.Email = &email
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			// Lost the race against a concurrent registration
			return nil, false, apperr.Conflict("Username or email already exists")
		}
		return nil, false, apperr.Persistence("Failed to create account", err)
	}

	// Notifications go out after the commit so a sink failure can never roll
	// back or block the registration.
	go s.sendRegistrationEmails(user, token)

	return user, user.HasEmail(), nil
}

func (s *AuthService) sendRegistrationEmails(user *model.User, token string) {
	if !user.HasEmail() {
		return
	}

	err := s.email.SendVerificationEmail(*user.Email, user.Username, token)
	if err != nil {
		slog.Warn("verification email failed", "error", err, "user_id", user.ID)
	}

	if user.NewsletterSubscribed {
		err = s.email.SendNewsletterWelcome(*user.Email, user.Username)
		if err != nil {
			slog.Warn("newsletter welcome email failed", "error", err, "user_id", user.ID)
		}
	}
}

// Login checks credentials. Unknown usernames and wrong passwords produce
// the same error so the response never reveals which one it was.
func (s *AuthService) Login(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.Unauthenticated("Invalid username or password")
		}
		return nil, apperr.Persistence("Failed to log in", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperr.Unauthenticated("Invalid username or password")
	}

	return user, nil
}

// VerifyEmail consumes a single-use verification token.
func (s *AuthService) VerifyEmail(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperr.Validation("Verification token required")
	}

	user, err := s.userRepository.ByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.InvalidToken("Invalid verification token")
		}
		return apperr.Persistence("Failed to verify email", err)
	}

	err = s.userRepository.MarkVerified(user.ID)
	if err != nil {
		return apperr.Persistence("Failed to verify email", err)
	}

	return nil
}

// CurrentUser resolves a session's user. A stale session whose user is gone
// yields NotFound, not an empty projection.
func (s *AuthService) CurrentUser(userID int64) (*model.User, error) {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Persistence("Failed to load user", err)
	}

	return user, nil
}

// GenerateSessionToken issues a signed session token bound to the user id
// and username.
func (s *AuthService) GenerateSessionToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.sessionExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

// VerifySessionToken validates a session token and returns the principal it
// identifies.
func (s *AuthService) VerifySessionToken(tokenString string) (*ctxkeys.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("invalid session token")
	}
	username, _ := claims["username"].(string)

	return &ctxkeys.Session{UserID: int64(userID), Username: username}, nil
}

func (s *AuthService) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(s.sessionExpiry),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// generateToken returns a URL-safe random token for email verification.
func generateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
