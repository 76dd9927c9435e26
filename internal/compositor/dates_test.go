package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2020-01", "Jan 2020"},
		{"2017-12-31", "Dec 2017"},
		{"2019", "Jan 2019"},
		{"Mar 2015", "Mar 2015"},
		{"September 2014", "Sep 2014"},
		{"2021-06-01T10:00:00Z", "Jun 2021"},
		{"Present", "Present"},
		{"present", "Present"},
		{"", ""},
		{"   ", ""},
		{"sometime in 2019", "sometime in 2019"},
		{"2020-13", "2020-13"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Present", FormatRange("2020-01", "Present"))
	assert.Equal(t, "Mar 2017 - Dec 2019", FormatRange("2017-03", "2019-12"))
	assert.Equal(t, "Mar 2017", FormatRange("2017-03", ""))
	assert.Equal(t, "Present", FormatRange("", "Present"))
	assert.Equal(t, "", FormatRange("", ""))
	assert.Equal(t, "soon - Present", FormatRange("soon", "Present"))
}
