package database

import (
	"fmt"

	"github.com/athlytiq/athlytiq/internal/models"
)

// GetProfile retrieves a user's profile.
func (db *DB) GetProfile(userID int64) (models.Profile, error) {
	var p models.Profile
	var updatedAt string
	err := db.conn.QueryRow(
		`SELECT user_id, full_name, email, bio, fitness_goals, updated_at
		 FROM profiles WHERE user_id = ?`,
		userID,
	).Scan(&p.UserID, &p.FullName, &p.Email, &p.Bio, &p.FitnessGoals, &updatedAt)
	if err != nil {
		return p, err
	}
	p.UpdatedAt, _ = parseTime(updatedAt)
	return p, nil
}

// UpsertProfile creates or replaces a user's profile.
func (db *DB) UpsertProfile(p *models.Profile) error {
	_, err := db.conn.Exec(
		`INSERT INTO profiles (user_id, full_name, email, bio, fitness_goals, updated_at)
		 VALUES (?, ?, ?, ?, ?, datetime('now'))
		 ON CONFLICT(user_id) DO UPDATE SET
			full_name = excluded.full_name,
			email = excluded.email,
			bio = excluded.bio,
			fitness_goals = excluded.fitness_goals,
			updated_at = datetime('now')`,
		p.UserID, p.FullName, p.Email, p.Bio, p.FitnessGoals,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
