package service

import (
	"errors"
	"strconv"
	"testing"

	"myrendezvous/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePort_Default(t *testing.T) {
	cfg, err := ResolvePort("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPort, cfg.Port)
}

func TestResolvePort_Override(t *testing.T) {
	for _, p := range []int{1, 80, 9000, 62277, 65535} {
		cfg, err := ResolvePort(strconv.Itoa(p))
		require.NoError(t, err)
		assert.Equal(t, p, cfg.Port)
	}
}

func TestResolvePort_Invalid(t *testing.T) {
	for _, override := range []string{"abc", "0", "-1", "65536", "12.5", "9000x", " 9000 ", " ", "9000\n"} {
		t.Run(override, func(t *testing.T) {
			_, err := ResolvePort(override)
			require.Error(t, err)
			assert.True(t, IsConfiguration(err))
		})
	}
}

func TestResolveHostname_Override(t *testing.T) {
	called := false
	lookup := func() (string, error) {
		called = true
		return "ignored", nil
	}
	for _, h := range []string{"myhost", "10.0.0.7", "::1", " padded ", " "} {
		cfg, err := ResolveHostname(h, lookup)
		require.NoError(t, err)
		assert.Equal(t, h, cfg.Hostname)
	}
	assert.False(t, called)
}

func TestResolveHostname_Lookup(t *testing.T) {
	cfg, err := ResolveHostname("", func() (string, error) { return "worker-1", nil })
	require.NoError(t, err)
	assert.Equal(t, "worker-1", cfg.Hostname)
}

func TestResolveHostname_LookupFails(t *testing.T) {
	_, err := ResolveHostname("", func() (string, error) { return "", errors.New("no network") })
	require.Error(t, err)
	assert.True(t, IsHostResolution(err))

	_, err = ResolveHostname("", func() (string, error) { return "", nil })
	require.Error(t, err)
	assert.True(t, IsHostResolution(err))
}

func TestResolveHostname_DefaultLookup(t *testing.T) {
	cfg, err := ResolveHostname("", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Hostname)
}
