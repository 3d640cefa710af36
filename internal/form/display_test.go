package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistanceKm(t *testing.T) {
	assert.Equal(t, "1.23", FormatDistanceKm(1234))
	assert.Equal(t, "0.00", FormatDistanceKm(0))
	assert.Equal(t, "0.35", FormatDistanceKm(350))
	assert.Equal(t, "12.00", FormatDistanceKm(12000))
}

func TestMapURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=1.2877%2C103.8466",
		MapURL(1.2877, 103.8466))
}

func TestNewView(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		assert.Equal(t, View{Status: StatusIdle, Postcode: "039803"}, NewView("039803", Idle{}))
	})

	t.Run("pending", func(t *testing.T) {
		v := NewView("039803", Pending{Postcode: "039803"})
		assert.True(t, v.Loading)
		assert.Nil(t, v.Result)
		assert.Empty(t, v.Error)
	})

	t.Run("succeeded", func(t *testing.T) {
		v := NewView("039803", Succeeded{Result: sampleResult})
		assert.False(t, v.Loading)
		assert.Equal(t, &sampleResult, v.Result)
		assert.Equal(t, "1.23", v.DistanceKm)
		assert.Equal(t, MapURL(sampleResult.Lat, sampleResult.Lng), v.MapURL)
		assert.Empty(t, v.Error)
	})

	t.Run("failed", func(t *testing.T) {
		v := NewView("039803", Failed{Message: "no carpark found"})
		assert.Equal(t, StatusFailed, v.Status)
		assert.Nil(t, v.Result)
		assert.Equal(t, "no carpark found", v.Error)
	})
}
