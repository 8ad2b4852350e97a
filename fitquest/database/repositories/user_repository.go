package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type UserRepository interface {
	// Create inserts the user unless the email is taken and reports whether a row was written.
	Create(ctx context.Context, db bun.IDB, user *models.User) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, db bun.IDB, email string) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRepository) Create(ctx context.Context, db bun.IDB, user *models.User) (bool, error) {
	now := time.Now().UTC()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := db.NewInsert().
		Model(user).
		On("CONFLICT (email) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, r.HandleError("create", "user", user.Email, err)
	}

	inserted := rowsAffected(res) > 0
	if inserted {
		slog.Info("User created",
			slog.String("type", "db"),
			slog.String("user_id", user.ID.String()),
			slog.String("username", user.Username))
	}
	return inserted, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "user", id, err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, db bun.IDB, email string) (*models.User, error) {
	user := new(models.User)
	err := db.NewSelect().
		Model(user).
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_email", "user", email, err)
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model((*models.User)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return r.HandleError("delete", "user", id, err)
	}
	if rowsAffected(res) == 0 {
		return &NotFoundError{Entity: "user", ID: id}
	}

	slog.Info("User deleted",
		slog.String("type", "db"),
		slog.String("user_id", id.String()))
	return nil
}
