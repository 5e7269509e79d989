package object

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/util"
)

// Object describes a stored upload.
type Object struct {
	Key      string
	Size     int64
	MimeType string
}

// ObjectStore keeps uploaded resumes and their extracted text.
type ObjectStore interface {
	// Save stores r under the user's namespace with a unique key.
	Save(ctx context.Context, userID, fileName string, r io.Reader) (Object, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	SaveWithKey(ctx context.Context, key, contentType string, r io.Reader) (int64, error)
	// DeleteUser removes every object in the user's namespace.
	DeleteUser(ctx context.Context, userID string) error
}

// UserPrefix is the key namespace of a user's objects.
func UserPrefix(userID string) string {
	return util.HashUserKey(userID)
}

// NewKeyName returns a collision-free file name for an upload.
func NewKeyName(fileName string) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return uuid.NewString() + "_" + sanitized, nil
}

// Sniff detects the content type from the first 512 bytes and returns a
// reader that replays them.
func Sniff(r io.Reader) (string, io.Reader, error) {
	var head [512]byte
	n, err := io.ReadFull(r, head[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("read sniff: %w", err)
	}
	return http.DetectContentType(head[:n]), io.MultiReader(bytes.NewReader(head[:n]), r), nil
}
