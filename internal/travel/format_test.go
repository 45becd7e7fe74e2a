package travel

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "★★★★★", Stars(9))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "July 4, 2022", FormatDate(time.Date(2022, time.July, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Unknown date", FormatDate(time.Time{}))
}

func TestPreview(t *testing.T) {
	short := "short note"
	assert.Equal(t, short, Preview(short))

	exact := strings.Repeat("é", PreviewLength)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("a", PreviewLength+20)
	assert.Equal(t, strings.Repeat("a", PreviewLength)+"...", Preview(long))
}
