package store

const (
	userColumns = `id, username, email, full_name, hashed_password, disabled, created_at`

	createUser = `INSERT INTO users (username, email, full_name, hashed_password, disabled)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)
