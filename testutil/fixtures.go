package testutil

// SampleSessionJSON is a session payload covering every projector: a
// decision event, a skill event, and an untyped event that passes through
// unprojected.
const SampleSessionJSON = `{
	"id": "s1",
	"timestamp": "2024-01-15T10:30:00",
	"project": "demo",
	"summary": "Did X",
	"events": [
		{
			"type": "DecisionMade",
			"timestamp": "2024-01-15T10:31:00",
			"content": {
				"decision": "Use SQLite",
				"rationale": "simplicity",
				"alternatives_considered": ["Postgres"],
				"impact_level": "low"
			}
		},
		{
			"type": "SkillLearned",
			"timestamp": "2024-01-15T10:32:00",
			"content": {
				"skill_name": "debugging",
				"category": "engineering",
				"success_rate": 0.85,
				"pattern": "bisect the failure",
				"examples": ["narrowed a flaky test"]
			}
		},
		{
			"type": "Note",
			"timestamp": "2024-01-15T10:33:00",
			"content": {"text": "unprojected"}
		}
	]
}`
