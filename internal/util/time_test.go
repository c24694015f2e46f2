package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTimeProvider(t *testing.T) {
	// Reset global provider before tests
	mu.Lock()
	globalTimeProvider = nil
	mu.Unlock()

	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "local timezone",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "UTC timezone",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone Europe/Berlin",
			timezone: "Europe/Berlin",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
		{
			name:     "empty timezone defaults to Local",
			timezone: "",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitializeTimeProvider(tt.timezone)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid timezone")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, globalTimeProvider)
			}
		})
	}
}

func TestGetTimeProviderDefaultsToLocal(t *testing.T) {
	mu.Lock()
	globalTimeProvider = nil
	mu.Unlock()

	provider := GetTimeProvider()

	require.NotNil(t, provider)
	assert.Equal(t, time.Local, provider.Location())
}

func TestTimeProviderLocation(t *testing.T) {
	provider := &TimeProvider{}
	require.NoError(t, provider.SetTimezone("UTC"))

	assert.Equal(t, time.UTC, provider.Location())

	ts := time.Date(2013, time.January, 16, 21, 36, 54, 0, time.UTC)
	assert.Equal(t, "2013-01-16 21:36:54", provider.Format(ts, "2006-01-02 15:04:05"))
	assert.Equal(t, ts, provider.In(ts))
}
