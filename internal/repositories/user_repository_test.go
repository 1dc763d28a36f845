package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopcore-labs/shopcore/internal/models"
	repository "github.com/shopcore-labs/shopcore/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	assert.NotNil(t, repo, "NewUserRepo should return a non-nil repository")
}

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	ctx := context.Background()

	createSQL := regexp.QuoteMeta(`INSERT INTO users(email, password, name, role, created_at, updated_at) VALUES($1, $2, $3, $4, NOW(), NOW()) RETURNING id, created_at, updated_at`)

	t.Run("CreateUser_Success", func(t *testing.T) {
		// Arrange
		user := &models.User{
			Email:    "test@example.com",
			Password: "hashedpassword",
			Name:     "Test User",
			Role:     models.RoleCustomer,
		}
		now := time.Now()
		newID := uuid.New()

		mock.ExpectQuery(createSQL).
			WithArgs(user.Email, user.Password, user.Name, user.Role).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(newID, now, now))

		// Act
		err := repo.CreateUser(ctx, user)

		// Assert
		require.NoError(t, err, "CreateUser should not return an error on success")
		assert.Equal(t, newID, user.ID, "User ID should be updated")
		assert.WithinDuration(t, now, user.CreatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUser_DuplicateEmail", func(t *testing.T) {
		// Arrange
		user := &models.User{
			Email:    "taken@example.com",
			Password: "hashedpassword",
			Name:     "Existing User",
			Role:     models.RoleCustomer,
		}

		mock.ExpectQuery(createSQL).
			WithArgs(user.Email, user.Password, user.Name, user.Role).
			WillReturnError(&pq.Error{Code: "23505"})

		// Act
		err := repo.CreateUser(ctx, user)

		// Assert
		require.Error(t, err)
		assert.True(t, repository.IsUniqueViolation(err), "duplicate email should surface as a unique violation")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByEmail_Success", func(t *testing.T) {
		// Arrange
		email := "test@example.com"
		userID := uuid.New()
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`SELECT id, email, password, name, role, created_at, updated_at FROM users WHERE email = $1`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "role", "created_at", "updated_at"}).
				AddRow(userID, email, "hashedpassword", "Test User", models.RoleCustomer, now, now))

		// Act
		user, err := repo.GetUserByEmail(ctx, email)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByEmail_NotFound", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`SELECT id, email, password, name, role, created_at, updated_at FROM users WHERE email = $1`)

		mock.ExpectQuery(expectedSQL).
			WithArgs("unknown@example.com").
			WillReturnError(sql.ErrNoRows)

		// Act
		user, err := repo.GetUserByEmail(ctx, "unknown@example.com")

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserById_Success", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`SELECT id, email, name, role, created_at, updated_at FROM users WHERE id = $1`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at", "updated_at"}).
				AddRow(userID, "test@example.com", "Test User", models.RoleAdmin, now, now))

		// Act
		user, err := repo.GetUserById(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Empty(t, user.Password, "password hash is never read back")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserById_NotFound", func(t *testing.T) {
		// Arrange
		userID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`SELECT id, email, name, role, created_at, updated_at FROM users WHERE id = $1`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		// Act
		user, err := repo.GetUserById(ctx, userID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
