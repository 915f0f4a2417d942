package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupeetravel/internal/modules/intent"
	"rupeetravel/internal/types"
)

func TestDecodeIntentFullPayload(t *testing.T) {
	payload := []byte(`{
		"trip_type": "round_trip",
		"origin": "Delhi",
		"destination": "Hanoi",
		"departure_date_start": "2025-12-01",
		"departure_date_end": "2025-12-31",
		"trip_duration_days": 7,
		"limit_per_leg": 1,
		"clarification_needed": null
	}`)

	ti, err := decodeIntent(payload)
	require.NoError(t, err)

	assert.Equal(t, intent.TripRoundTrip, ti.TripType)
	assert.Equal(t, "Delhi", ti.Origin)
	assert.Equal(t, "Hanoi", ti.Destination)
	require.NotNil(t, ti.DepartureStart)
	assert.Equal(t, types.NewDate(2025, time.December, 1), *ti.DepartureStart)
	require.NotNil(t, ti.DepartureEnd)
	assert.Equal(t, types.NewDate(2025, time.December, 31), *ti.DepartureEnd)
	require.NotNil(t, ti.TripDurationDays)
	assert.Equal(t, 7, *ti.TripDurationDays)
	assert.Equal(t, 1, ti.LimitPerLeg)
	assert.Empty(t, ti.ClarificationNeeded)
}

func TestDecodeIntentNotJSON(t *testing.T) {
	_, err := decodeIntent([]byte("I could not understand that."))
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestDecodeIntentEmptyShell(t *testing.T) {
	// Parses as JSON but carries nothing actionable and no question either.
	_, err := decodeIntent([]byte(`{"trip_type": "banana"}`))
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestDecodeIntentClarificationAloneIsEnough(t *testing.T) {
	ti, err := decodeIntent([]byte(`{"clarification_needed": "Where are you flying from?"}`))
	require.NoError(t, err)
	assert.Equal(t, intent.TripUnknown, ti.TripType)
	assert.Equal(t, "Where are you flying from?", ti.ClarificationNeeded)
}

func TestDecodeIntentDropsMalformedDates(t *testing.T) {
	ti, err := decodeIntent([]byte(`{
		"trip_type": "one_way",
		"origin": "Delhi",
		"destination": "Hanoi",
		"departure_date_start": "next friday",
		"departure_date_end": "2025-12-31"
	}`))
	require.NoError(t, err)

	// A bad start also invalidates the dangling end.
	assert.Nil(t, ti.DepartureStart)
	assert.Nil(t, ti.DepartureEnd)
}

func TestDecodeIntentRepairsInvertedRange(t *testing.T) {
	ti, err := decodeIntent([]byte(`{
		"trip_type": "one_way",
		"origin": "Delhi",
		"destination": "Hanoi",
		"departure_date_start": "2025-12-31",
		"departure_date_end": "2025-12-01"
	}`))
	require.NoError(t, err)

	require.NotNil(t, ti.DepartureStart)
	require.NotNil(t, ti.DepartureEnd)
	assert.True(t, ti.DepartureStart.Before(*ti.DepartureEnd))
}

func TestDecodeIntentDropsNegativeDuration(t *testing.T) {
	ti, err := decodeIntent([]byte(`{
		"trip_type": "round_trip",
		"origin": "Delhi",
		"destination": "Hanoi",
		"trip_duration_days": -3
	}`))
	require.NoError(t, err)
	assert.Nil(t, ti.TripDurationDays)
}

func TestDecodeIntentUnknownTripType(t *testing.T) {
	ti, err := decodeIntent([]byte(`{"trip_type": "multi_city", "origin": "Delhi", "destination": "Hanoi"}`))
	require.NoError(t, err)
	assert.Equal(t, intent.TripUnknown, ti.TripType)
}

func TestCleanJSONString(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONString("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONString("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONString("  {\"a\":1}  "))
}
