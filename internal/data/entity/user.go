package entity

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	DisplayName  string `db:"display_name"`
}
