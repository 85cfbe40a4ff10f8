package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/brucethesloth/TradingAgents/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, profile updates and deletion against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation (23505) on users_username_key → [ErrUsernameTaken].
//   - unique_violation (23505) on users_email_key → [ErrEmailTaken].
//   - Transient driver errors → wrapped [ErrStoreUnavailable].
//   - Anything else → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.FullName, user.HashedPassword, user.Disabled)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error: user was not created")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case "users_email_key":
				return models.User{}, ErrEmailTaken
			default:
				return models.User{}, ErrUsernameTaken
			}
		}

		return models.User{}, r.db.wrapDBError(err)
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username exactly matches
// the given value. Usernames are case-sensitive.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Transient driver errors → wrapped [ErrStoreUnavailable].
//   - Anything else → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByEmail retrieves the account registered with the given email.
// Accounts without an email are never matched.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the account with the given internal identifier.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: user lookup failed")
		return models.User{}, r.db.wrapDBError(err)
	}

	return foundUser, nil
}

// UpdateProfile applies the non-nil fields of update to the account
// identified by update.ID and returns the fresh database representation.
//
// Only the enumerated mutable columns (full_name, disabled, hashed_password)
// can ever appear in the generated UPDATE; identity fields are untouchable
// by construction. Returns [ErrNoFieldsToUpdate] when every field is nil and
// [ErrUserNotFound] when no row matches update.ID.
func (r *userRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.Update("users").PlaceholderFormat(squirrel.Dollar)

	fields := 0
	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
		fields++
	}
	if update.Disabled != nil {
		builder = builder.Set("disabled", *update.Disabled)
		fields++
	}
	if update.HashedPassword != nil {
		builder = builder.Set("hashed_password", *update.HashedPassword)
		fields++
	}

	if fields == 0 {
		return models.User{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": update.ID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: building update query failed")
		return models.User{}, err
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanUser(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateProfile").Int64("id", update.ID).Msg("error: profile update failed")
		return models.User{}, r.db.wrapDBError(err)
	}

	return updated, nil
}

// DeleteUser removes the account with the given identifier.
// Returns [ErrUserNotFound] when no row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("error: user deletion failed")
		return r.db.wrapDBError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapDBError(err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// scanUser reads one users row into dst in [userColumns] order.
func scanUser(row *sql.Row, dst *models.User) error {
	return row.Scan(&dst.ID, &dst.Username, &dst.Email, &dst.FullName, &dst.HashedPassword, &dst.Disabled, &dst.CreatedAt)
}
