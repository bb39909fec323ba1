package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     String
		wantByte byte
		wantPos  int
		wantErr  bool
	}{
		{
			name:  "plain ascii",
			input: "Hello, world!",
			want:  "Hello, world!",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "del byte is ascii",
			input: "a\x7fb",
			want:  "a\x7fb",
		},
		{
			name:     "first non-ascii byte",
			input:    "a\x80b",
			wantErr:  true,
			wantByte: 0x80,
			wantPos:  1,
		},
		{
			name:     "multi-byte rune reports byte offset",
			input:    "caf\xc3\xa9", // café
			wantErr:  true,
			wantByte: 0xc3,
			wantPos:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalidErr *InvalidByteError
				require.ErrorAs(t, err, &invalidErr)
				assert.Equal(t, tt.wantByte, invalidErr.Byte)
				assert.Equal(t, tt.wantPos, invalidErr.Pos)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromBytes(t *testing.T) {
	src := []byte("Hello, world!")
	got, err := FromBytes(src)
	require.NoError(t, err)
	assert.Equal(t, String("Hello, world!"), got)

	// later writes to the input must not show through
	src[0] = 'J'
	assert.Equal(t, "Hello, world!", got.String())

	_, err = FromBytes([]byte{'h', 'i', 0xff})
	var invalidErr *InvalidByteError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, byte(0xff), invalidErr.Byte)
	assert.Equal(t, 2, invalidErr.Pos)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("Hello, world!"))
	assert.True(t, Valid(""))
	assert.False(t, Valid("héllo"))

	assert.True(t, ValidBytes([]byte("plain")))
	assert.False(t, ValidBytes([]byte{0x80}))
}

func TestBytesCopies(t *testing.T) {
	s := String("abc")
	b := s.Bytes()
	b[0] = 'z'
	assert.Equal(t, "abc", s.String())
}

func TestInvalidByteErrorMessage(t *testing.T) {
	err := &InvalidByteError{Byte: 0xc3, Pos: 3}
	assert.Equal(t, "invalid ascii byte 0xc3 at offset 3", err.Error())
}
