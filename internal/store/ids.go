package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"roadmap-cli/internal/model"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding): ~40 bits, plenty for a local document.
func newRandomID(prefix string) (string, error) {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}

// NextID generates a fresh id with the given prefix ("grp", "item"), retrying
// on the unlikely collision with an existing entity.
func NextID(st *model.State, prefix string) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID(prefix)
		if err != nil {
			break
		}
		if !idExists(st, id) {
			return id
		}
	}
	// Extremely unlikely fallback: counter-suffixed id.
	for i := 1; ; i++ {
		id := fmt.Sprintf("%s-%d", prefix, i)
		if !idExists(st, id) {
			return id
		}
	}
}

func idExists(st *model.State, id string) bool {
	for _, g := range st.Groups {
		if g.ID == id {
			return true
		}
	}
	for _, it := range st.Items {
		if it.ID == id {
			return true
		}
	}
	for _, p := range st.People {
		if p.ID == id {
			return true
		}
	}
	return false
}
