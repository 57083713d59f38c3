package database

import "database/sql"

// ClassCollection is the total collected for one class.
type ClassCollection struct {
	Class      string `json:"class"`
	Collection int64  `json:"collection"`
}

// ComponentCollection is the total collected against one fee component name.
type ComponentCollection struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// MonthlyCollection is the total collected in one calendar month.
type MonthlyCollection struct {
	Month      string `json:"month"`
	Collection int64  `json:"collection"`
}

// GetClasswiseCollection sums payments per student class.
func GetClasswiseCollection(db *sql.DB) ([]ClassCollection, error) {
	query := `SELECT s.class, COALESCE(SUM(p.amount), 0)
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  GROUP BY s.class
			  ORDER BY s.class`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClassCollection
	for rows.Next() {
		var c ClassCollection
		if err := rows.Scan(&c.Class, &c.Collection); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetComponentCollection sums payments per fee component. Rows without a
// component land under "Unallocated".
func GetComponentCollection(db *sql.DB) ([]ComponentCollection, error) {
	query := `SELECT COALESCE(f.name, 'Unallocated'), COALESCE(SUM(p.amount), 0)
			  FROM payments p
			  LEFT JOIN fee_components f ON p.fee_component_id = f.id
			  GROUP BY f.name
			  ORDER BY 2 DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ComponentCollection
	for rows.Next() {
		var c ComponentCollection
		if err := rows.Scan(&c.Name, &c.Amount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetMonthlyTrend sums payments per payment-date month.
func GetMonthlyTrend(db *sql.DB) ([]MonthlyCollection, error) {
	query := `SELECT to_char(p.payment_date, 'YYYY-MM'), COALESCE(SUM(p.amount), 0)
			  FROM payments p
			  GROUP BY 1
			  ORDER BY 1`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthlyCollection
	for rows.Next() {
		var m MonthlyCollection
		if err := rows.Scan(&m.Month, &m.Collection); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
