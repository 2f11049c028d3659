package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"/casesList", 1},
		{"/casesList?page=0", 1},
		{"/casesList?page=-3", 1},
		{"/casesList?page=abc", 1},
		{"/casesList?page=7", 7},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.raw, nil)
		assert.Equal(t, tt.want, getPage(r), tt.raw)
	}
}

func TestGetLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"/casesList", 20},
		{"/casesList?limit=0", 20},
		{"/casesList?limit=-5", 20},
		{"/casesList?limit=50", 50},
		{"/casesList?limit=1000", 100},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.raw, nil)
		assert.Equal(t, tt.want, getLimit(r, 20, 100), tt.raw)
	}
}
