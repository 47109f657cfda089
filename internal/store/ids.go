package store

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz234567"

func newRandomID(prefix string) (string, error) {
	return newRandomIDWithLen(prefix, 8)
}

func newRandomIDWithLen(prefix string, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	for _, c := range buf {
		b.WriteByte(idAlphabet[int(c)%len(idAlphabet)])
	}
	return b.String(), nil
}

func idExists(db *DB, id string) bool {
	if db == nil {
		return false
	}
	for _, n := range db.Notebooks {
		if n.ID == id {
			return true
		}
	}
	for _, f := range db.Folders {
		if f.ID == id {
			return true
		}
	}
	for _, p := range db.Pages {
		if p.ID == id {
			return true
		}
	}
	for _, s := range db.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
