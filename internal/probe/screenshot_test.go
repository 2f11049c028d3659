package probe

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, "http://localhost:5173/", o.URL)
	assert.Equal(t, filepath.Join("verification", "verification.png"), o.OutPath)
	assert.Equal(t, 30*time.Second, o.Timeout)
}

func TestOptionsOverridesKept(t *testing.T) {
	o := Options{
		URL:     "http://localhost:8080/",
		OutPath: "out/shot.png",
		Timeout: 5 * time.Second,
	}.withDefaults()
	assert.Equal(t, "http://localhost:8080/", o.URL)
	assert.Equal(t, "out/shot.png", o.OutPath)
	assert.Equal(t, 5*time.Second, o.Timeout)
}
