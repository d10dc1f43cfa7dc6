package tui

import (
	"testing"
)

func TestStyles(t *testing.T) {
	// Test that styles are initialized by checking if they can render content
	if TitleStyle.Render("test") == "" {
		t.Error("TitleStyle should be able to render content")
	}
	if SuccessStyle.Render("test") == "" {
		t.Error("SuccessStyle should be able to render content")
	}
	if MutedStyle.Render("test") == "" {
		t.Error("MutedStyle should be able to render content")
	}
	if RequiredStyle.Render("test") == "" {
		t.Error("RequiredStyle should be able to render content")
	}
}
