package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const banner = "Welcome to the Realm of Adventures!\n"

// runLogin performs the one-shot login exchange: banner, username prompt,
// validation. There are no retries; a bad username ends the connection.
// r must be the same buffered reader the command loop will use, so input
// pipelined behind the username is not lost.
func runLogin(r *bufio.Reader, w io.Writer) (string, error) {
	if _, err := w.Write([]byte(banner)); err != nil {
		return "", err
	}
	if _, err := w.Write([]byte("Enter your username: ")); err != nil {
		return "", err
	}

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading username: %w", err)
	}

	username := strings.TrimSpace(line)
	if !validUsername(username) {
		w.Write([]byte("Invalid username. Disconnecting.\n"))
		return "", fmt.Errorf("invalid username %q", username)
	}

	return username, nil
}

// validUsername accepts non-empty names made of letters, digits, and
// underscores. Usernames become message subjects, so whitespace and
// punctuation are out.
func validUsername(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
