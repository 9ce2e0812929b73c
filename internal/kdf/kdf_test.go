package kdf_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"kdfkey/internal/kdf"
)

func TestInit(t *testing.T) {
	require.NoError(t, kdf.Init())
	// Idempotent.
	require.NoError(t, kdf.Init())
}

// Test vectors from RFC 6070 (PBKDF2-HMAC-SHA1). The 16M-iteration case is
// omitted for test runtime.
func TestDeriveRFC6070(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		salt       string
		iterations int
		keyLen     int
		want       string
	}{
		{
			name:       "c=1",
			password:   "password",
			salt:       "salt",
			iterations: 1,
			keyLen:     20,
			want:       "0c60c80f961f0e71f3a9b524af6012062fe037a6",
		},
		{
			name:       "c=2",
			password:   "password",
			salt:       "salt",
			iterations: 2,
			keyLen:     20,
			want:       "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957",
		},
		{
			name:       "c=4096",
			password:   "password",
			salt:       "salt",
			iterations: 4096,
			keyLen:     20,
			want:       "4b007901b765489abead49d926f721d065a429c1",
		},
		{
			name:       "long inputs",
			password:   "passwordPASSWORDpassword",
			salt:       "saltSALTsaltSALTsaltSALTsaltSALTsalt",
			iterations: 4096,
			keyLen:     25,
			want:       "3d2eec4fe41c849b80c8d83662c0e44a8b291a964cf2f07038",
		},
		{
			name:       "embedded NUL",
			password:   "pass\x00word",
			salt:       "sa\x00lt",
			iterations: 4096,
			keyLen:     16,
			want:       "56fa6aa75548099dcc37d7f03425e0c3",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := kdf.Derive([]byte(tc.password), []byte(tc.salt), tc.iterations, tc.keyLen)
			require.NoError(t, err)
			require.Equal(t, tc.want, hex.EncodeToString(got))
			require.Len(t, got, tc.keyLen)
		})
	}
}

func TestDeriveRejectsBadParameters(t *testing.T) {
	_, err := kdf.Derive([]byte("password"), []byte("salt"), 0, 20)
	require.Error(t, err)

	_, err = kdf.Derive([]byte("password"), []byte("salt"), 1, 0)
	require.Error(t, err)

	_, err = kdf.Derive([]byte("password"), []byte("salt"), -5, -1)
	require.Error(t, err)
}
