// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mail

import (
	"strings"
	"testing"
)

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	got := Render("<p>Hi {{name}}, re: {{subject}}</p>", map[string]string{
		"name":    "Ana",
		"subject": "Hello",
	})
	want := "<p>Hi Ana, re: Hello</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	got := Render("<p>{{message}}</p>", map[string]string{
		"message": `<script>alert("x")</script>`,
	})
	if strings.Contains(got, "<script>") {
		t.Errorf("script tag not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %q", got)
	}
}

func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	got := Render("{{name}} {{unknown}}", map[string]string{"name": "Ana"})
	if got != "Ana {{unknown}}" {
		t.Errorf("got %q", got)
	}
}

func TestRenderSubjectDoesNotEscape(t *testing.T) {
	got := RenderSubject("New message: {{subject}}", map[string]string{
		"subject": "Q&A session",
	})
	if got != "New message: Q&A session" {
		t.Errorf("got %q", got)
	}
}
