package users

import "time"

// VerificationTTL bounds how long an emailed verification link stays valid.
const VerificationTTL = 24 * time.Hour

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FullName      string    `json:"fullName"`
	PictureURL    string    `json:"pictureUrl"`
	GoogleSub     string    `json:"-"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// VerificationToken is a single-use email verification secret.
type VerificationToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
