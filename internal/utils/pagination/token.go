package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 encoded cursor from an entry's posting time and ID.
// The pair is the tie-broken sort key of ledger entry listings.
func EncodeToken(postedAt time.Time, entryID string) string {
	tokenStr := fmt.Sprintf("%s|%s", postedAt.UTC().Format(timeFormat), entryID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into posting time and entry ID.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	postedAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (posted_at parse): %w", err)
	}

	return postedAt, parts[1], nil
}

// IsAfter reports whether an item sorted by (postedAt DESC, entryID DESC) comes
// strictly after the cursor position.
func IsAfter(postedAt time.Time, entryID string, cursorAt time.Time, cursorID string) bool {
	if postedAt.Equal(cursorAt) {
		return entryID < cursorID
	}
	return postedAt.Before(cursorAt)
}
