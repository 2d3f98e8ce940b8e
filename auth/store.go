package auth

import (
	"bufio"
	"crypto/subtle"
	"log/slog"
	"os"
	"strings"
)

// Store holds the username/password pairs loaded at startup. It is read-only
// after Load, so lookups need no synchronization.
//
// Credentials are compared in plain text. No hashing, no rate limiting, no
// lockout: a stated design limitation of this server, not an oversight.
type Store struct {
	users map[string]string
}

// Load reads one "username:password" pair per line. Only the first colon
// splits the pair; lines without a colon are skipped; a duplicate username
// keeps the last occurrence. An unreadable file is logged and yields an empty
// store, so every authentication attempt then fails.
func Load(path string, log *slog.Logger) *Store {
	users := make(map[string]string)

	file, err := os.Open(path)
	if err != nil {
		log.Error("Unable to open credentials file", "path", path, "err", err)
		return &Store{users: users}
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		sep := strings.Index(line, ":")
		if sep < 0 {
			continue
		}
		users[line[:sep]] = line[sep+1:]
	}
	if err := scanner.Err(); err != nil {
		log.Error("Error while reading credentials file", "path", path, "err", err)
	}
	return &Store{users: users}
}

// Validate is a pure lookup-and-compare.
func (s *Store) Validate(username, password string) bool {
	stored, ok := s.users[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// Len reports how many credentials were loaded, for startup logging.
func (s *Store) Len() int {
	return len(s.users)
}
