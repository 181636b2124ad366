package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
)

// --- helpers ---

func newService(t *testing.T, repo Repository) *Service {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewService(repo, cfg)
}

type fakeRepo struct {
	createOut *User
	createErr error

	getOut *User
	getErr error
}

func (f *fakeRepo) Create(ctx context.Context, u *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(h)
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeRepo{createOut: &User{ID: 1, Email: "a@a.com"}}
	s := newService(t, repo)

	user, err := s.Register(context.Background(), "a@a.com", "pass")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID != 1 || user.Email != "a@a.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestRegister_EmptyFields(t *testing.T) {
	s := newService(t, &fakeRepo{})

	for _, tc := range []struct{ email, password string }{
		{"", "pass"},
		{"a@a.com", ""},
		{"", ""},
	} {
		_, err := s.Register(context.Background(), tc.email, tc.password)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("(%q,%q): want ErrorValidation, got %v", tc.email, tc.password, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeRepo{createErr: common.ErrorAlreadyExists}
	s := newService(t, repo)

	_, err := s.Register(context.Background(), "a@a.com", "pass")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_Success_TokenDecodesToEmail(t *testing.T) {
	repo := &fakeRepo{
		getOut: &User{ID: 7, Email: "a@a.com", PasswordHash: hashOf(t, "pass")},
	}
	s := newService(t, repo)

	token, err := s.Login(context.Background(), "a@a.com", "pass")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	claims, err := auth.ParseToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "a@a.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin_UnknownUserAndWrongPassword_SameError(t *testing.T) {
	unknown := newService(t, &fakeRepo{getErr: common.ErrorNotFound})
	_, errUnknown := unknown.Login(context.Background(), "ghost@a.com", "pass")

	wrongPass := newService(t, &fakeRepo{
		getOut: &User{ID: 1, Email: "a@a.com", PasswordHash: hashOf(t, "other")},
	})
	_, errWrong := wrongPass.Login(context.Background(), "a@a.com", "pass")

	if !errors.Is(errUnknown, common.ErrorUnauthorized) {
		t.Fatalf("unknown user: want ErrorUnauthorized, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want ErrorUnauthorized, got %v", errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("error messages must not distinguish the cases: %q vs %q",
			errUnknown.Error(), errWrong.Error())
	}
}

func TestLogin_RepoFailure(t *testing.T) {
	s := newService(t, &fakeRepo{getErr: errors.New("boom")})

	_, err := s.Login(context.Background(), "a@a.com", "pass")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	s := newService(t, NewMemoryRepository())

	if _, err := s.Register(context.Background(), "a@a.com", "pass"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	token, err := s.Login(context.Background(), "a@a.com", "pass")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	claims, err := auth.ParseToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Email != "a@a.com" {
		t.Fatalf("claims email mismatch: got %q", claims.Email)
	}
}
