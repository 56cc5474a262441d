package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCodepage(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Codepage
	}{
		{"PC850", "PC850", CodepagePC850},
		{"ISO8859_15", "ISO8859_15", CodepageISO885915},
		{"WPC1252", "WPC1252", CodepageWPC1252},
		{"PC437", "PC437", CodepagePC437},
		{"ISO8859_7", "ISO8859_7", CodepageISO88597},
		{"empty label falls back", "", CodepagePC850},
		{"unknown label falls back", "not-a-real-codepage", CodepagePC850},
		{"lowercase is not matched", "pc850", CodepagePC850},
		{"whitespace is not trimmed", " PC437", CodepagePC850},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveCodepage(tt.label))
		})
	}
}

func TestResolveCodepage_TotalAndDefaultSafe(t *testing.T) {
	// resolve("garbage") == resolve("") == PC850
	assert.Equal(t, ResolveCodepage(""), ResolveCodepage("garbage"))
	assert.Equal(t, DefaultCodepage, ResolveCodepage(""))
}

func TestCodepage_Table(t *testing.T) {
	tests := []struct {
		codepage Codepage
		table    byte
	}{
		{CodepagePC437, 0},
		{CodepagePC850, 2},
		{CodepageISO88597, 15},
		{CodepageWPC1252, 16},
		{CodepageISO885915, 40},
		{Codepage("bogus"), 2}, // unknown values behave like the default
	}

	for _, tt := range tests {
		t.Run(tt.codepage.String(), func(t *testing.T) {
			assert.Equal(t, tt.table, tt.codepage.Table())
		})
	}
}

func TestCodepage_IsValid(t *testing.T) {
	for _, cp := range AllCodepages() {
		assert.True(t, cp.IsValid(), cp.String())
	}
	assert.False(t, Codepage("UTF8").IsValid())
	assert.False(t, Codepage("").IsValid())
}
