package location_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fractal-global/credits/location"
)

func TestNew(t *testing.T) {
	addr := location.New("1 Main St", "Apt 4", "Springfield", "IL", "62701", "US")

	require.Equal(t, "1 Main St", addr.Address1)
	require.Equal(t, "Apt 4", addr.Address2)
	require.Equal(t, "Springfield", addr.City)
	require.Equal(t, "IL", addr.State)
	require.Equal(t, "62701", addr.Zip)
	require.Equal(t, "US", addr.Country)
}

func TestJSON(t *testing.T) {
	addr := location.New("1 Main St", "", "Springfield", "IL", "62701", "US")

	data, err := json.Marshal(addr)
	require.NoError(t, err)
	require.NotContains(t, string(data), "address2")

	var parsed location.Address
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, addr, parsed)
}
