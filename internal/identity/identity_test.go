package identity

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"routined/internal/storage"
)

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.MigrateUp(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store, err := NewUserStore(db)
	if err != nil {
		t.Fatalf("new user store: %v", err)
	}
	return store
}

func TestTokenRoundTrip(t *testing.T) {
	mgr, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	id := Identity{UserID: "user-1", Email: "student@example.com"}

	token, err := mgr.Issue(id, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := mgr.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id.UserID || claims.Email != id.Email {
		t.Fatalf("claims diverged: %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	mgr, err := NewTokenManager("test-secret", time.Minute)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	token, err := mgr.Issue(Identity{UserID: "user-1"}, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := mgr.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got: %v", err)
	}
}

func TestValidateHonorsInjectedClock(t *testing.T) {
	mgr, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	// A moment far from the wall clock: the token is long expired in real
	// time but fresh against the manager's own clock.
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mgr.SetTimeFunc(func() time.Time { return at.Add(time.Minute) })

	token, err := mgr.Issue(Identity{UserID: "user-1"}, at)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := mgr.Validate(token)
	if err != nil {
		t.Fatalf("validate against injected clock: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("claims diverged: %+v", claims)
	}

	mgr.SetTimeFunc(func() time.Time { return at.Add(2 * time.Hour) })
	if _, err := mgr.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken past ttl, got: %v", err)
	}
}

func TestWrongKeyRejected(t *testing.T) {
	a, _ := NewTokenManager("secret-a", time.Hour)
	b, _ := NewTokenManager("secret-b", time.Hour)
	token, err := a.Issue(Identity{UserID: "user-1"}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := b.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken across keys, got: %v", err)
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	store := newTestUserStore(t)
	ctx := context.Background()

	id, err := store.Register(ctx, "Student@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !id.Present() || id.Email != "student@example.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}

	got, err := store.Authenticate(ctx, "student@example.com", "hunter22")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.UserID != id.UserID {
		t.Fatalf("user id changed across login: %q vs %q", got.UserID, id.UserID)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	store := newTestUserStore(t)
	ctx := context.Background()
	if _, err := store.Register(ctx, "a@example.com", "pw123456"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := store.Register(ctx, "A@Example.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got: %v", err)
	}
}

func TestBadCredentialsIndistinguishable(t *testing.T) {
	store := newTestUserStore(t)
	ctx := context.Background()
	if _, err := store.Register(ctx, "a@example.com", "pw123456"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errWrongPw := store.Authenticate(ctx, "a@example.com", "nope")
	_, errNoUser := store.Authenticate(ctx, "missing@example.com", "nope")
	if !errors.Is(errWrongPw, ErrInvalidCredentials) || !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("expected uniform ErrInvalidCredentials, got %v / %v", errWrongPw, errNoUser)
	}
}
