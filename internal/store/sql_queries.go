package store

import (
	"strings"

	"github.com/MKhiriev/go-sudoku-backend/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// usersColumns is the column order every users query returns; scanUser
// depends on it.
var usersColumns = []string{
	"id",
	"username",
	"password_hash",
	"created_at",
	"games_played",
	"total_time",
	"fastest_time",
}

func returningUsersColumns() string {
	return "RETURNING " + strings.Join(usersColumns, ", ")
}

// buildCreateUserQuery builds the INSERT of a new account. Statistics start
// from the column defaults.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.
		Insert(usersTable).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix(returningUsersColumns()).
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.
		Select(usersColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.
		Select(usersColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildRecordGameQuery folds one game into the statistics in a single
// statement, so concurrent games of the same user never lose an update.
// fastest_time only moves down; NULL means no games yet.
func buildRecordGameQuery(b sq.StatementBuilderType, userID int64, elapsed int64) (string, []any, error) {
	return b.
		Update(usersTable).
		Set("games_played", sq.Expr("games_played + 1")).
		Set("total_time", sq.Expr("total_time + ?", elapsed)).
		Set("fastest_time", sq.Expr(
			"CASE WHEN fastest_time IS NULL OR ? < fastest_time THEN ? ELSE fastest_time END",
			elapsed, elapsed,
		)).
		Where(sq.Eq{"id": userID}).
		Suffix(returningUsersColumns()).
		ToSql()
}
