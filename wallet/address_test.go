package wallet_test

import (
	"crypto/rand"
	"encoding/json"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/fractal-global/credits/wallet"
)

// randomAddress returns a valid address with random identifier bytes.
func randomAddress(t *testing.T) wallet.Address {
	t.Helper()

	var data [wallet.AddressLen]byte
	_, err := rand.Read(data[1:])
	require.NoError(t, err)

	return wallet.FromData(data)
}

func TestRoundtrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		addr := randomAddress(t)

		parsed, err := wallet.Parse(addr.String())
		require.NoError(t, err, spew.Sdump(addr.Raw()))
		require.Equal(t, addr, parsed, spew.Sdump(addr.Raw()))
		require.Equal(t, addr.Raw(), parsed.Raw())
	}
}

func TestZeroAddress(t *testing.T) {
	addr := wallet.FromData([wallet.AddressLen]byte{})
	require.Equal(t, "fr111111111", addr.String())

	parsed, err := wallet.Parse("fr111111111")
	require.NoError(t, err)
	require.Equal(t, addr, parsed)

	_, err = wallet.Parse("fr111111112")
	require.ErrorIs(t, err, wallet.ErrChecksum)
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		name  string
		input string
		kind  error
		mark  error
	}

	valid := wallet.FromData([wallet.AddressLen]byte{0x00, 0x11, 0x2A, 0x44, 0xCD, 0xFF, 0xE0}).String()

	tcs := []TC{
		{
			name:  "empty",
			input: "",
			kind:  wallet.ErrPrefix,
			mark:  oops.New("unexpected"),
		},
		{
			name:  "short",
			input: "f",
			kind:  wallet.ErrPrefix,
			mark:  oops.New("unexpected"),
		},
		{
			name:  "wrong tag",
			input: "ab" + valid[2:],
			kind:  wallet.ErrPrefix,
			mark:  oops.New("unexpected"),
		},
		{
			name:  "uppercase tag",
			input: "FR" + valid[2:],
			kind:  wallet.ErrPrefix,
			mark:  oops.New("unexpected"),
		},
		{
			name:  "invalid character",
			input: "fr11O111111",
			kind:  wallet.ErrEncoding,
			mark:  oops.New("unexpected"),
		},
		{
			name:  "empty payload",
			input: "fr",
			kind:  wallet.ErrEncoding,
			mark:  oops.New("unexpected"),
		},
		{
			name:  "too short",
			input: "fr11",
			kind:  wallet.ErrTagByte,
			mark:  oops.New("unexpected"),
		},
		{
			name:  "wrong first byte",
			input: "fr" + strings.Repeat("z", 12),
			kind:  wallet.ErrTagByte,
			mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wallet.Parse(tc.input)
			require.Error(t, err, tc.mark)
			require.ErrorIs(t, err, tc.kind, tc.mark)
			require.True(t, wallet.Error.Has(err), tc.mark)
		})
	}

	t.Run("position", func(t *testing.T) {
		_, err := wallet.Parse("fr11O111111")
		require.ErrorContains(t, err, "position 4")
	})
}

func TestCorruption(t *testing.T) {
	addr := randomAddress(t)
	text := addr.String()

	// Rewriting any single character of the payload must not parse back to
	// the same address, and in practice fails checksum verification.
	for i := len(wallet.Prefix); i < len(text); i++ {
		for _, c := range []byte{'1', 'z', 'Q'} {
			if text[i] == c {
				continue
			}

			corrupted := text[:i] + string(c) + text[i+1:]

			parsed, err := wallet.Parse(corrupted)
			if err == nil {
				require.NotEqual(t, addr, parsed, corrupted)
			}
		}
	}

	// A corrupted checksum character always fails.
	last := len(text) - 1
	c := byte('1')
	if text[last] == c {
		c = 'z'
	}
	_, err := wallet.Parse(text[:last] + string(c))
	require.Error(t, err)
}

func TestFromDataContract(t *testing.T) {
	require.Panics(t, func() {
		var data [wallet.AddressLen]byte
		data[0] = 0x01
		wallet.FromData(data)
	})
}

func TestMarshalText(t *testing.T) {
	addr := randomAddress(t)

	data, err := json.Marshal(addr)
	require.NoError(t, err)
	require.Equal(t, `"`+addr.String()+`"`, string(data))

	var parsed wallet.Address
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, addr, parsed)

	require.Error(t, json.Unmarshal([]byte(`"fr111111112"`), &parsed))
}

func TestMarshalBinary(t *testing.T) {
	addr := randomAddress(t)

	data, err := addr.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, wallet.AddressLen)

	var parsed wallet.Address
	require.NoError(t, parsed.UnmarshalBinary(data))
	require.Equal(t, addr, parsed)

	require.Error(t, parsed.UnmarshalBinary(data[:3]))

	data[0] = 0x01
	err = parsed.UnmarshalBinary(data)
	require.ErrorIs(t, err, wallet.ErrTagByte)
}
