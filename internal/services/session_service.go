package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"sync"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/model"
	"github.com/Morgpo/Grub-N-Go/internal/storage"
)

// Storage keys for the persisted session, one scalar each.
const (
	KeyUserID    = "userId"
	KeyUserRole  = "userRole"
	KeyUserEmail = "userEmail"
)

const MinPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SessionService holds the authenticated identity for this run, backed by
// the durable key-value store. The in-memory session is non-nil exactly when
// all three storage keys were present and well-formed at load time.
type SessionService struct {
	api   AuthAPI
	store storage.KeyValue

	mu      sync.Mutex
	session *model.Session
	loaded  bool
}

func NewSessionService(api AuthAPI, store storage.KeyValue) *SessionService {
	return &SessionService{api: api, store: store}
}

// Initialize restores a persisted session. It runs once; later calls are
// no-ops. A partial or malformed set of keys leaves the session absent.
func (s *SessionService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	id, err := s.store.Get(ctx, KeyUserID)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	role, err := s.store.Get(ctx, KeyUserRole)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	email, err := s.store.Get(ctx, KeyUserEmail)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	s.loaded = true
	if id == "" || role == "" || email == "" {
		return nil
	}
	accountID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// stale or corrupted id: treat as logged out
		return nil
	}
	s.session = &model.Session{AccountID: accountID, Role: role, Email: email}
	return nil
}

func (s *SessionService) Login(ctx context.Context, email, password string) (model.Session, error) {
	if email == "" || password == "" {
		return model.Session{}, validationErr("email and password are required")
	}
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return model.Session{}, err
	}
	return s.establish(ctx, model.Session{AccountID: res.AccountID, Role: res.Role, Email: res.Email})
}

// RegisterForm carries the sign-up fields the login page collects.
type RegisterForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
	Phone           string
}

func (s *SessionService) Register(ctx context.Context, form RegisterForm) (model.Session, error) {
	if form.Email == "" || form.Password == "" {
		return model.Session{}, validationErr("email and password are required")
	}
	if !emailRegex.MatchString(form.Email) {
		return model.Session{}, validationErr("invalid email format")
	}
	if form.Password != form.ConfirmPassword {
		return model.Session{}, validationErr("passwords do not match")
	}
	if len(form.Password) < MinPasswordLen {
		return model.Session{}, validationErr(fmt.Sprintf("password must be at least %d characters", MinPasswordLen))
	}

	res, err := s.api.Register(ctx, grubngoRegister(form))
	if err != nil {
		return model.Session{}, err
	}
	return s.establish(ctx, model.Session{AccountID: res.AccountID, Role: res.Role, Email: res.Email})
}

func grubngoRegister(form RegisterForm) grubngo.RegisterRequest {
	return grubngo.RegisterRequest{
		Email:    form.Email,
		Password: form.Password,
		Role:     model.RoleCustomer,
		Name:     form.Name,
		Phone:    form.Phone,
	}
}

// establish persists the identity and swaps the in-memory session.
func (s *SessionService) establish(ctx context.Context, sess model.Session) (model.Session, error) {
	if err := s.store.Set(ctx, KeyUserID, strconv.FormatInt(sess.AccountID, 10)); err != nil {
		return model.Session{}, fmt.Errorf("persist session: %w", err)
	}
	if err := s.store.Set(ctx, KeyUserRole, sess.Role); err != nil {
		return model.Session{}, fmt.Errorf("persist session: %w", err)
	}
	if err := s.store.Set(ctx, KeyUserEmail, sess.Email); err != nil {
		return model.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.session = &sess
	s.loaded = true
	s.mu.Unlock()
	return sess, nil
}

// Logout clears the in-memory session unconditionally; a storage failure is
// logged but never surfaces to the caller.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, KeyUserID, KeyUserRole, KeyUserEmail); err != nil {
		log.Printf("logout: clearing session keys: %v", err)
	}
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

func (s *SessionService) Current() (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return model.Session{}, false
	}
	return *s.session, true
}

func (s *SessionService) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Loading reports whether Initialize has not yet checked storage.
func (s *SessionService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loaded
}
