package planner

import (
	"fmt"
)

const promptTemplate = `
Create a comprehensive, professional career roadmap and syllabus for: "%s".
Context/User Background: "%s".

The output must be a structured plan including:
1. A detailed Syllabus breakdown.
2. A step-by-step Roadmap divided into Phases (e.g., Foundation, Intermediate, Advanced, Revision).
3. For each step, include an "aiStrategy" which specifically explains how to use AI tools (like Gemini/ChatGPT) to accelerate learning for that specific topic (e.g., "Ask AI to generate quiz questions", "Use AI to simplify this complex theory").
4. Suggested resources (books, standard websites).

Return strictly JSON matching the schema.
`

// BuildPrompt embeds goal and context verbatim.
func BuildPrompt(goal, context string) string {
	return fmt.Sprintf(promptTemplate, goal, context)
}
