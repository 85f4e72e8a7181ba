package generator

const (
	SystemPrompt = "You are an expert planning assistant. You must output JSON that matches the provided schema exactly."

	// Inputs: user text, today, weekday, time zone, local now, busy summary, rules.
	UserPromptTemplate = `User input:
%s

Today (local to user): %s (%s, time zone: %s)
Current local time: %s

Already busy today (do not schedule over these):
%s

Planner rules (from Notion):
%s`

	SchemaInstructions = `Respond with a single JSON object and nothing else:
{"tasks":[{"title":string,"date":"YYYY-MM-DD","start_time":"HH:MM","duration_minutes":integer 5-480,"difficulty":"simple"|"normal"|"deep","notes":string|null}]}
Every task must use today's date and must not overlap another task or a busy block.`

	DefaultTemperature = 0.2
	DefaultMaxTokens   = 2048
)
