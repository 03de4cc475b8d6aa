package sqlxdb

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/trezcool/campusconnect/core/user"
)

type userRow struct {
	ID        string `db:"id"`
	Role      string `db:"role"`
	Email     string `db:"email"`
	Password  string `db:"password"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	ClassID   string `db:"class_id"`
	Seq       int    `db:"seq"`
}

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) toUser(row userRow) (user.User, error) {
	usr := user.User{
		ID:        row.ID,
		Role:      user.Role(row.Role),
		Email:     row.Email,
		Password:  row.Password,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		ClassID:   row.ClassID,
	}

	switch usr.Role {
	case user.RoleParent:
		if err := repo.db.Select(
			&usr.Children,
			repo.db.Rebind(`SELECT student_id FROM user_children WHERE parent_id = ? ORDER BY idx`),
			usr.ID,
		); err != nil {
			return user.User{}, errors.Wrap(err, "querying user children")
		}
	case user.RoleTeacher:
		if err := repo.db.Select(
			&usr.Subjects,
			repo.db.Rebind(`SELECT subject_id FROM teacher_subjects WHERE teacher_id = ? ORDER BY idx`),
			usr.ID,
		); err != nil {
			return user.User{}, errors.Wrap(err, "querying teacher subjects")
		}
	}
	return usr, nil
}

func (repo *userRepository) toUsers(rows []userRow) ([]user.User, error) {
	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		usr, err := repo.toUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, usr)
	}
	return users, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	var rows []userRow
	if err := repo.db.Select(&rows, `SELECT * FROM users ORDER BY seq`); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return repo.toUsers(rows)
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	var row userRow
	err := repo.db.Get(&row, repo.db.Rebind(`SELECT * FROM users WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, errors.Wrap(err, "querying user by ID")
	}
	return repo.toUser(row)
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	var row userRow
	err := repo.db.Get(&row, repo.db.Rebind(`SELECT * FROM users WHERE lower(email) = lower(?)`), email)
	if err == sql.ErrNoRows {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, errors.Wrap(err, "querying user by email")
	}
	return repo.toUser(row)
}

func (repo *userRepository) QueryUsersByRole(role user.Role) ([]user.User, error) {
	var rows []userRow
	if err := repo.db.Select(&rows, repo.db.Rebind(`SELECT * FROM users WHERE role = ? ORDER BY seq`), string(role)); err != nil {
		return nil, errors.Wrap(err, "querying users by role")
	}
	return repo.toUsers(rows)
}
