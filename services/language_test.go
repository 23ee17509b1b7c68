package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEnglishDominant(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Instagram", true},
		{"爱奇艺PPS -《欢乐颂2》电视剧热播", false},
		{"Docs To Go™ Free Office Suite", true},
		{"Instachat 😜", true},
		{"😜😜😜😜", true},
		{"😜😜😜😜😜", false},
		{"", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEnglishDominant(tt.text), "IsEnglishDominant(%q)", tt.text)
	}
}
