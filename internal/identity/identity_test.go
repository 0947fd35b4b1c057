package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStorageID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "long identity is truncated",
			input: "a1b2c3d4e5f6a7b8c9d0e1f2",
			want:  "a1b2-c3d4-e5f6-a7b8",
		},
		{
			name:  "short identity is padded",
			input: "abc",
			want:  "abc0-0000-0000-0000",
		},
		{
			name:  "formatting characters are stripped",
			input: "A1B2-C3D4_e5f6 a7b8!",
			want:  "a1b2-c3d4-e5f6-a7b8",
		},
		{
			name:  "empty identity pads fully",
			input: "",
			want:  "0000-0000-0000-0000",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ToStorageID(tc.input))
		})
	}
}

func TestToStorageID_Shape(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"u", "user-12345", strings.Repeat("z", 400)} {
		token := ToStorageID(id)
		assert.Len(t, token, 19)
		parts := strings.Split(token, "-")
		require.Len(t, parts, 4)
		for _, p := range parts {
			assert.Len(t, p, 4)
		}
	}
}

func TestToStorageID_KnownCollision(t *testing.T) {
	t.Parallel()

	// The shim is documented as lossy: identities that only differ by
	// formatting characters or beyond the sixteenth alphanumeric collide.
	assert.Equal(t, ToStorageID("user-1234"), ToStorageID("USER_1234"))
	assert.Equal(t,
		ToStorageID("a1b2c3d4e5f6a7b8-first"),
		ToStorageID("a1b2c3d4e5f6a7b8-second"),
	)
}

func TestToPseudonym_Deterministic(t *testing.T) {
	t.Parallel()

	first := ToPseudonym("provider|3f8a2c")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ToPseudonym("provider|3f8a2c"))
	}
	assert.NotEqual(t, first, ToPseudonym("provider|3f8a2d"))
}

func TestToPseudonym_DoesNotLeakIdentity(t *testing.T) {
	t.Parallel()

	ext := "someexternalidentity"
	alias := ToPseudonym(ext)
	assert.NotContains(t, strings.ToLower(alias), ext)
	// Pseudonym and storage token must be unrelated: neither contains the other.
	assert.NotContains(t, ToStorageID(ext), strings.ToLower(alias))
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	s := NewSession("provider|abc123")
	assert.Equal(t, "provider|abc123", s.ExternalID)
	assert.Equal(t, ToStorageID("provider|abc123"), s.StorageID)
	assert.Equal(t, ToPseudonym("provider|abc123"), s.Alias)
}
