package database

import (
	"database/sql"
	"fmt"

	"github.com/athlytiq/athlytiq/internal/models"
)

// CreateComment inserts a community comment.
func (db *DB) CreateComment(c *models.Comment) error {
	_, err := db.conn.Exec(
		`INSERT INTO comments (id, user_id, content, user_name, user_avatar)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Content, c.UserName, c.UserAvatar,
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ListComments returns the newest comments first. Comments stored without
// a display name are backfilled from the author's current profile when
// one exists.
func (db *DB) ListComments(limit int) ([]models.Comment, error) {
	rows, err := db.conn.Query(
		`SELECT c.id, c.user_id, c.content, c.user_name, c.user_avatar,
		        c.created_at, c.updated_at, COALESCE(p.full_name, '')
		 FROM comments c
		 LEFT JOIN profiles p ON p.user_id = c.user_id
		 ORDER BY c.created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		var createdAt, updatedAt, profileName string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Content, &c.UserName, &c.UserAvatar,
			&createdAt, &updatedAt, &profileName); err != nil {
			return nil, err
		}
		if c.UserName == "" && profileName != "" {
			c.UserName = profileName
		}
		c.CreatedAt, _ = parseTime(createdAt)
		c.UpdatedAt, _ = parseTime(updatedAt)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// DisplayName resolves the name shown on new comments: the profile's
// full name when set, otherwise the email local part, otherwise a
// truncated user tag.
func (db *DB) DisplayName(userID int64) (string, error) {
	var fullName, email string
	err := db.conn.QueryRow(
		`SELECT COALESCE(p.full_name, ''), u.email
		 FROM users u LEFT JOIN profiles p ON p.user_id = u.id
		 WHERE u.id = ?`,
		userID,
	).Scan(&fullName, &email)
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}
	if fullName != "" {
		return fullName, nil
	}
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i], nil
		}
	}
	return fmt.Sprintf("User %d", userID), nil
}

// CreateFeedback stores a product rating with an optional comment.
func (db *DB) CreateFeedback(f *models.Feedback) error {
	_, err := db.conn.Exec(
		`INSERT INTO feedback (id, user_id, rating, comment) VALUES (?, ?, ?, ?)`,
		f.ID, f.UserID, f.Rating, f.Comment,
	)
	if err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}
