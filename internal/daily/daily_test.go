package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	require.Equal(t, "2026-03-02", DateKey(time.Date(2026, 3, 1, 22, 0, 0, 0, loc)))
}

func TestSeedIsStablePerDay(t *testing.T) {
	morning := time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)
	tomorrow := morning.Add(24 * time.Hour)

	a := Seed(morning, "salt", "Animales", 1)
	require.Equal(t, a, Seed(evening, "salt", "animales", 1))
	require.NotEqual(t, a, Seed(tomorrow, "salt", "Animales", 1))
	require.NotEqual(t, a, Seed(morning, "salt", "Animales", 2))
	require.NotEqual(t, a, Seed(morning, "other", "Animales", 1))
	require.GreaterOrEqual(t, a, int64(0))
}
