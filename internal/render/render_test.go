package render

import (
	"strings"
	"testing"
)

func TestDailySection_Render(t *testing.T) {
	section := &DailySection{
		Time:       "10:30",
		Project:    "demo",
		Summary:    "Did X",
		EventCount: 3,
		SessionID:  "s1",
	}

	var b strings.Builder
	if err := section.Render(&b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "\n## 10:30 - demo\n\nDid X\n\nEvents: 3 | Session ID: `s1`\n"
	if b.String() != want {
		t.Errorf("Render() = %q, want %q", b.String(), want)
	}
}

func TestDailyHeading(t *testing.T) {
	var b strings.Builder
	if err := DailyHeading(&b, "2024-01-15"); err != nil {
		t.Fatalf("DailyHeading() error = %v", err)
	}
	if b.String() != "# 2024-01-15\n\n" {
		t.Errorf("DailyHeading() = %q", b.String())
	}
}

func TestDecision_Render(t *testing.T) {
	decision := &Decision{
		Title:        "Use SQLite",
		Timestamp:    "2024-01-15T10:31:00",
		Date:         "2024-01-15",
		SessionID:    "s1",
		Rationale:    "simplicity",
		Alternatives: []string{"Postgres", "flat files"},
		ImpactLevel:  "low",
	}

	got := decision.String()
	for _, want := range []string{
		"# Use SQLite\n",
		"## Metadata\n- **Date**: 2024-01-15T10:31:00\n- **Session ID**: `s1`\n",
		"## Decision\nUse SQLite\n",
		"## Rationale\nsimplicity\n",
		"## Alternatives Considered\n- Postgres\n- flat files\n",
		"## Impact Level\nlow\n",
		"## Related\n[[2024-01-15]]\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestDecision_Render_EmptyAlternatives(t *testing.T) {
	decision := &Decision{
		Title:       "Use SQLite",
		Timestamp:   "2024-01-15T10:31:00",
		Date:        "2024-01-15",
		SessionID:   "s1",
		ImpactLevel: "medium",
	}

	got := decision.String()
	if !strings.Contains(got, "## Alternatives Considered\n\n\n## Impact Level") {
		t.Errorf("empty alternatives should render as an empty block\ngot:\n%s", got)
	}
}

func TestSkill_Render(t *testing.T) {
	skill := &Skill{
		Name:        "debugging",
		Timestamp:   "2024-01-15T10:32:00",
		Date:        "2024-01-15",
		Category:    "engineering",
		SuccessRate: 0.85,
		Pattern:     "bisect the failure",
		Examples:    []string{"narrowed a flaky test"},
	}

	got := skill.String()
	for _, want := range []string{
		"# debugging\n",
		"- **Created**: 2024-01-15T10:32:00",
		"- **Category**: engineering",
		"- **Success Rate**: 85.0%",
		"- **Use Count**: 1",
		"## Pattern\nbisect the failure\n",
		"## Examples\n- narrowed a flaky test\n",
		"## Version History\n- v1.0 (2024-01-15): initial version\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestSkill_Render_ZeroRate(t *testing.T) {
	skill := &Skill{Name: "untested", Timestamp: "2024-01-15T10:32:00", Date: "2024-01-15", Category: "general"}
	if !strings.Contains(skill.String(), "- **Success Rate**: 0.0%") {
		t.Errorf("zero success rate should render as 0.0%%\ngot:\n%s", skill.String())
	}
}
