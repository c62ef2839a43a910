package player_test

import (
	"testing"

	"github.com/fanhubapp/fanhub-client/internal/player"
	"github.com/stretchr/testify/assert"
)

func TestTapZone(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		width float64
		want  player.Zone
	}{
		{name: "far left", x: 0, width: 300, want: player.ZoneRetreat},
		{name: "just inside left third", x: 99, width: 300, want: player.ZoneRetreat},
		{name: "left boundary lands in middle", x: 100, width: 300, want: player.ZoneTogglePause},
		{name: "center", x: 150, width: 300, want: player.ZoneTogglePause},
		{name: "right boundary lands in middle", x: 200, width: 300, want: player.ZoneTogglePause},
		{name: "just inside right third", x: 201, width: 300, want: player.ZoneAdvance},
		{name: "far right", x: 299, width: 300, want: player.ZoneAdvance},
		{name: "narrow container", x: 5, width: 12, want: player.ZoneTogglePause},
		{name: "zero width is inert", x: 50, width: 0, want: player.ZoneTogglePause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, player.TapZone(tt.x, tt.width))
		})
	}
}

// The mapping depends only on the coordinate relative to the container, so
// scaling both x and width by the same factor never changes the zone.
func TestTapZoneIsRelative(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 2, 10} {
		assert.Equal(t, player.ZoneRetreat, player.TapZone(10*scale, 300*scale))
		assert.Equal(t, player.ZoneTogglePause, player.TapZone(150*scale, 300*scale))
		assert.Equal(t, player.ZoneAdvance, player.TapZone(290*scale, 300*scale))
	}
}
