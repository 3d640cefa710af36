package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "no carpark found", want: "no carpark found"},
		{name: "trims", in: "  no carpark found \n", want: "no carpark found"},
		{name: "strips tags", in: "<b>Location</b> not found", want: "Location not found"},
		{name: "drops script", in: "<script>alert(1)</script>oops", want: "oops"},
		{name: "keeps ampersand", in: "HDB & URA unavailable", want: "HDB & URA unavailable"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}
