package database

import (
	"database/sql"
	"errors"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

// ErrNotFound is returned when a query targets a row that does not exist.
var ErrNotFound = errors.New("record not found")

// GetUserByEmail fetches an active user by email.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, is_active, created_at
			  FROM users WHERE email = $1 AND is_active = true`
	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user with an already-hashed password.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, name)
			  VALUES ($1, $2, $3) RETURNING id, is_active, created_at`
	return db.QueryRow(query, user.Email, user.Password, user.Name).Scan(
		&user.ID, &user.IsActive, &user.CreatedAt,
	)
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID int64, hash string) error {
	result, err := db.Exec(`UPDATE users SET password = $1 WHERE id = $2`, hash, userID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil || n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStudents returns all students, newest first.
func GetStudents(db *sql.DB) ([]models.Student, error) {
	query := `SELECT id, name, email, phone, class, roll_number,
			  parent_name, parent_phone, address, date_of_birth, created_at
			  FROM students ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Class, &s.RollNumber,
			&s.ParentName, &s.ParentPhone, &s.Address, &s.DateOfBirth, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CreateStudent inserts a student and fills the generated fields.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (name, email, phone, class, roll_number, parent_name, parent_phone, address, date_of_birth)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at`
	return db.QueryRow(query, s.Name, s.Email, s.Phone, s.Class, s.RollNumber,
		s.ParentName, s.ParentPhone, s.Address, s.DateOfBirth).Scan(&s.ID, &s.CreatedAt)
}

// UpdateStudent updates every editable student column.
func UpdateStudent(db *sql.DB, id int64, s *models.Student) error {
	query := `UPDATE students SET name = $1, email = $2, phone = $3, class = $4, roll_number = $5,
			  parent_name = $6, parent_phone = $7, address = $8, date_of_birth = $9
			  WHERE id = $10`
	result, err := db.Exec(query, s.Name, s.Email, s.Phone, s.Class, s.RollNumber,
		s.ParentName, s.ParentPhone, s.Address, s.DateOfBirth, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil || n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStudent removes a student.
func DeleteStudent(db *sql.DB, id int64) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil || n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetFeeComponents returns the whole fee catalog in catalog order.
func GetFeeComponents(db *sql.DB) ([]models.FeeComponent, error) {
	query := `SELECT id, name, class, amount, description, created_at
			  FROM fee_components ORDER BY id`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []models.FeeComponent
	for rows.Next() {
		var c models.FeeComponent
		if err := rows.Scan(&c.ID, &c.Name, &c.Class, &c.Amount, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, rows.Err()
}

// CreateFeeComponent inserts a fee component and fills the generated fields.
func CreateFeeComponent(db *sql.DB, c *models.FeeComponent) error {
	query := `INSERT INTO fee_components (name, class, amount, description)
			  VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return db.QueryRow(query, c.Name, c.Class, c.Amount, c.Description).Scan(&c.ID, &c.CreatedAt)
}

// UpdateFeeComponent updates every editable fee component column.
func UpdateFeeComponent(db *sql.DB, id int64, c *models.FeeComponent) error {
	query := `UPDATE fee_components SET name = $1, class = $2, amount = $3, description = $4
			  WHERE id = $5`
	result, err := db.Exec(query, c.Name, c.Class, c.Amount, c.Description, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil || n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFeeComponent removes a fee component.
func DeleteFeeComponent(db *sql.DB, id int64) error {
	result, err := db.Exec(`DELETE FROM fee_components WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil || n == 0 {
		return ErrNotFound
	}
	return nil
}
