// Package identity derives storage identifiers and display pseudonyms from
// the external auth provider's opaque identity strings. Every derivation is
// pure and deterministic; nothing here talks to the network or the database.
package identity

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	// storageIDLen is the number of alphanumeric characters in a storage
	// token before group separators are inserted.
	storageIDLen = 16
	// storageIDGroup is the size of each hyphen-separated group.
	storageIDGroup = 4
	// padRune fills short identities up to storageIDLen.
	padRune = '0'
)

// aliasKey salts the pseudonym digest so the label cannot be recomputed from
// the identity string by anyone who does not ship this binary.
var aliasKey = []byte("gullyconnect.alias.v1")

var aliasAdjectives = []string{
	"Amber", "Brave", "Calm", "Clever", "Coral", "Dusty", "Eager", "Fable",
	"Gentle", "Golden", "Happy", "Indigo", "Jolly", "Keen", "Lively", "Lucky",
	"Mellow", "Noble", "Olive", "Proud", "Quiet", "Rapid", "Silver", "Sunny",
	"Swift", "Teal", "Vivid", "Wise", "Witty", "Zesty",
}

var aliasAnimals = []string{
	"Bulbul", "Camel", "Civet", "Cobra", "Crane", "Drongo", "Falcon", "Gaur",
	"Heron", "Hornbill", "Ibex", "Koel", "Langur", "Lynx", "Macaque", "Mongoose",
	"Myna", "Nilgai", "Otter", "Panther", "Peacock", "Pangolin", "Sambar",
	"Sparrow", "Tahr", "Tiger",
}

// ToStorageID converts an external identity string into the fixed-shape
// token the posts/comments/likes tables key authors by
// ("xxxx-xxxx-xxxx-xxxx", 19 characters).
//
// This is a lossy, non-cryptographic compatibility shim kept only because
// the row schema fixes the token shape: formatting characters are stripped,
// the remainder is lowercased and padded or truncated to 16 characters, and
// hyphens are re-inserted at fixed offsets. Distinct identities that
// coincide after stripping and truncation will collide, and nothing about
// the token is reversible or collision resistant. Do not treat it as a
// security boundary.
func ToStorageID(externalID string) string {
	var b strings.Builder
	b.Grow(storageIDLen)
	for _, r := range strings.ToLower(externalID) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == storageIDLen {
				break
			}
		}
	}
	compact := b.String()
	for len(compact) < storageIDLen {
		compact += string(padRune)
	}

	groups := make([]string, 0, storageIDLen/storageIDGroup)
	for i := 0; i < storageIDLen; i += storageIDGroup {
		groups = append(groups, compact[i:i+storageIDGroup])
	}
	return strings.Join(groups, "-")
}

// ToPseudonym derives the stable display label for an external identity,
// e.g. "BraveLynx42". The label is a keyed BLAKE2b digest of the identity,
// so it is stable per identity, not reversible, and algorithmically
// unrelated to the storage-id transform.
func ToPseudonym(externalID string) string {
	h, err := blake2b.New256(aliasKey)
	if err != nil {
		// blake2b.New256 only fails on oversized keys; aliasKey is constant.
		panic(err)
	}
	h.Write([]byte(externalID))
	sum := h.Sum(nil)

	adj := aliasAdjectives[binary.BigEndian.Uint32(sum[0:4])%uint32(len(aliasAdjectives))]
	animal := aliasAnimals[binary.BigEndian.Uint32(sum[4:8])%uint32(len(aliasAnimals))]
	suffix := binary.BigEndian.Uint32(sum[8:12]) % 100
	return fmt.Sprintf("%s%s%02d", adj, animal, suffix)
}

// Session carries a request's resolved identity through the core. Handlers
// build it once from the verified auth token and pass it explicitly; no
// package-level "current user" exists anywhere.
type Session struct {
	ExternalID string
	StorageID  string
	Alias      string
}

// NewSession resolves both derived identities for an external identity string.
func NewSession(externalID string) Session {
	return Session{
		ExternalID: externalID,
		StorageID:  ToStorageID(externalID),
		Alias:      ToPseudonym(externalID),
	}
}
