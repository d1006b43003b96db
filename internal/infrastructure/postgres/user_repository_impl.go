package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	"github.com/oksasatya/go-shop-server/internal/domain/repository"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, privacy,
	name, lastname, phone, gender, picture, birthdate,
	address, city, state, zip, country,
	created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, privacy, name, lastname, phone, gender, picture, birthdate, address, city, state, zip, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`, u.Email, u.PasswordHash, u.Privacy,
		u.Profile.Name, u.Profile.Lastname, u.Profile.Phone, u.Profile.Gender, u.Profile.Picture, u.Profile.Birthdate,
		u.Delivery.Address, u.Delivery.City, u.Delivery.State, u.Delivery.Zip, u.Delivery.Country)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrEmailTaken
		}
		return err
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Privacy,
		&u.Profile.Name, &u.Profile.Lastname, &u.Profile.Phone, &u.Profile.Gender, &u.Profile.Picture, &u.Profile.Birthdate,
		&u.Delivery.Address, &u.Delivery.City, &u.Delivery.State, &u.Delivery.Zip, &u.Delivery.Country,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
}

var _ repository.UserRepository = (*UserRepository)(nil)
