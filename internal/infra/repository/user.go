package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"huellitas/internal/domain/user"
	"huellitas/internal/infra"
	"huellitas/internal/usecase/queries"
)

// UserRepository covers both the write side (commands.UserRepository)
// and the read side (queries.UserReadStore).
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, phone, role, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`,
		u.ID(),
		u.Name().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Phone(),
		u.Role().String(),
		u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, role, active
		FROM users
		WHERE id = $1
	`, id)

	var v queries.AuthorizedUserView
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Role, &v.IsActive); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, role, active, password_hash
		FROM users
		WHERE email = $1
	`, email)

	var v queries.AuthorizedUserView
	var hash string
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Role, &v.IsActive, &hash); err != nil {
		if isNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
