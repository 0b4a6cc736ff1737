package user

import (
	"context"
	"database/sql"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, email, password, name, role string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uint) (User, error)
	FindOrCreateGoogle(ctx context.Context, googleID, email, name string) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, password, name, role string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password, name, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email, password, name, role`,
		email, password, name, role,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, name, role, google_id
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.GoogleID)

	return u, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, name, role, google_id
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.GoogleID)

	return u, err
}

func (r *repository) FindOrCreateGoogle(ctx context.Context, googleID, email, name string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, name, role, google_id
		 FROM users WHERE google_id = $1 OR email = $2`,
		googleID, email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.GoogleID)

	if err == nil {
		if u.GoogleID == nil {
			// Existing credentials account logging in with Google for the
			// first time: link the identities.
			_, err = r.db.ExecContext(ctx,
				`UPDATE users SET google_id = $1 WHERE id = $2`,
				googleID, u.ID,
			)
			if err != nil {
				return User{}, err
			}
			u.GoogleID = &googleID
		}
		return u, nil
	}
	if err != sql.ErrNoRows {
		return User{}, err
	}

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password, name, role, google_id)
		 VALUES ($1, '', $2, $3, $4)
		 RETURNING id, email, password, name, role, google_id`,
		email, name, string(RoleCustomer), googleID,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.GoogleID)

	return u, err
}
