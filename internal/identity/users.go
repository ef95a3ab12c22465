package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore keeps registered users in the same sqlite database as the
// snapshots; credential checks go through bcrypt.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) (*UserStore, error) {
	if db == nil {
		return nil, errors.New("identity: nil db")
	}
	return &UserStore{db: db}, nil
}

func (s *UserStore) Register(ctx context.Context, email, password string) (Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE email = ?`, email)
	if err := row.Scan(&count); err != nil {
		return Identity{}, err
	}
	if count > 0 {
		return Identity{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, fmt.Errorf("identity: hash password: %w", err)
	}

	id := Identity{UserID: uuid.NewString(), Email: email}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		id.UserID, id.Email, string(hash), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Authenticate answers with the same error for an unknown email and a wrong
// password, so login probes cannot tell the two apart.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := s.db.QueryRowContext(ctx, `SELECT id, password_hash FROM users WHERE email = ?`, email)
	var userID, hash string
	if err := row.Scan(&userID, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{UserID: userID, Email: email}, nil
}
