// internal/user/service_test.go
//
// Unit-tests for registration and login using sqlmock.
//
// Run: go test ./internal/user -v

package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/yanizio/authd/internal/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sdb := sqlx.NewDb(db, "sqlmock")
	return NewService(sdb, auth.NewTokenService(testSecret, time.Hour)), mock
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(n)
}

func TestRegister(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM user WHERE username = ?`)).
		WithArgs("alice").
		WillReturnRows(countRows(0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM user WHERE email = ?`)).
		WithArgs("alice@example.com").
		WillReturnRows(countRows(0))
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO user (username, email, password_hash, status) VALUES (?, ?, ?, ?)`,
	)).
		WithArgs("alice", "alice@example.com", sqlmock.AnyArg(), statusActive).
		WillReturnResult(sqlmock.NewResult(7, 1))

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.ID != 7 || resp.Username != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestRegisterUsernameTaken(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM user WHERE username = ?`)).
		WithArgs("alice").
		WillReturnRows(countRows(1))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com",
		Password: "password123", PasswordConfirm: "password123",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func userRow(t *testing.T, id int64, username, email, password string, status int) *sqlmock.Rows {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	return sqlmock.
		NewRows([]string{"id", "username", "email", "password_hash", "status"}).
		AddRow(id, username, email, hash, status)
}

const findQuery = `SELECT id, username, email, password_hash, status FROM user WHERE username = ? OR email = ? LIMIT 1`

func TestLogin(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
		WithArgs("alice", "alice").
		WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "password123", statusActive))

	resp, err := svc.Login(context.Background(), LoginRequest{
		UsernameOrEmail: "alice",
		Password:        "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.ID != 7 || resp.Token == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ExpiresIn != 3600 {
		t.Fatalf("expires_in = %d, want 3600", resp.ExpiresIn)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
		WithArgs("alice", "alice").
		WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "password123", statusActive))

	_, err := svc.Login(context.Background(), LoginRequest{
		UsernameOrEmail: "alice",
		Password:        "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
		WithArgs("nobody", "nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "status"}))

	_, err := svc.Login(context.Background(), LoginRequest{
		UsernameOrEmail: "nobody",
		Password:        "whatever1",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
		WithArgs("alice", "alice").
		WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "password123", statusDisabled))

	_, err := svc.Login(context.Background(), LoginRequest{
		UsernameOrEmail: "alice",
		Password:        "password123",
	})
	if !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("err = %v, want ErrUserDisabled", err)
	}
}
