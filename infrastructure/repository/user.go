package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/techhr/ad-manager-api/infrastructure/database/postgres"
	"github.com/techhr/ad-manager-api/internal/domain"
)

const (
	usersTable = "users"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	UpdateLanguage(userID int, language string) (int64, error)
	ListUserIDs() ([]int, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("email", "password_hash", "name", "oauth_provider", "oauth_id", "language").
		Values(user.Email, nullableString(user.PasswordHash), user.Name, user.OAuthProvider, user.OAuthID, user.Language).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir usuário: %w", err)
	}

	return user, nil
}

// GetUserByEmail retorna nil quando não há usuário com o email informado
func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	user, err := r.getUser(squirrel.Eq{"email": email})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	user, err := r.getUser(squirrel.Eq{"id": userID})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) getUser(where squirrel.Eq) (*domain.User, error) {
	queryBuilder := squirrel.
		Select("id", "email", "password_hash", "name", "oauth_provider", "oauth_id", "language", "created_at").
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	var passwordHash sql.NullString
	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(
		&user.ID,
		&user.Email,
		&passwordHash,
		&user.Name,
		&user.OAuthProvider,
		&user.OAuthID,
		&user.Language,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if passwordHash.Valid {
		user.PasswordHash = passwordHash.String
	}

	return &user, nil
}

func (r *userRepository) UpdateLanguage(userID int, language string) (int64, error) {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("language", language).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(usersSQL, usersArgs...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar idioma: %w", err)
	}

	return result.RowsAffected()
}

// ListUserIDs lista os IDs de todos os usuários, usado pelo agendador de snapshots
func (r *userRepository) ListUserIDs() ([]int, error) {
	queryBuilder := squirrel.
		Select("id").
		From(usersTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar usuários: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ids, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
