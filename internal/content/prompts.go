package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

const topicsSystem = `You are a content strategist for narration-driven YouTube channels.
You suggest specific, researchable video topics with a clear angle.
You MUST respond with ONLY a valid JSON array - no preamble, no markdown.
Each object must have 'title', 'angle', and 'rationale' fields.`

func topicsPrompt(niche string, n int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Suggest %d video topics for a channel in the following niche: %s\n\n",
		n,
		niche,
	))

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Every topic must be specific enough to script without further research questions.\n")
	sb.WriteString("2. 'angle' states what makes this treatment different from the obvious one.\n")
	sb.WriteString("3. 'rationale' explains in one sentence why this audience clicks on it.\n")
	sb.WriteString("4. Return ONLY the JSON array, no explanation or markdown formatting.\n\n")

	sb.WriteString("Output the JSON array only:")
	return sb.String()
}

const scriptSystem = `You are a professional scriptwriter for narration-driven YouTube videos.
Your scripts open with a hook that creates an open question, build through
concrete scenes, and close by resolving the hook.

You MUST respond with ONLY valid JSON - no preamble, no markdown, no explanation.

The JSON object must have:
- "title": working title of the video
- "hook": the opening lines, spoken before anything else
- "scenes": array of objects with "narration" (the exact words to be spoken,
  1-4 sentences), "mood" (one of "calm" | "tense" | "warm" | "urgent" |
  "reflective"), and optional "image_prompt"`

func scriptPrompt(brief Brief) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Write a narration script about: %s\n\n", brief.Topic))

	if brief.Audience != "" {
		sb.WriteString(fmt.Sprintf("Target audience: %s\n", brief.Audience))
	}
	if brief.Tone != "" {
		sb.WriteString(fmt.Sprintf("Tone: %s\n", brief.Tone))
	}
	if brief.Sections > 0 {
		sb.WriteString(fmt.Sprintf("Structure the body as %d sections.\n", brief.Sections))
	}

	sb.WriteString("\nIMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Narration must read naturally aloud - short sentences, no headings.\n")
	sb.WriteString("2. Do not address the viewer as 'you guys' or use filler praise.\n")
	sb.WriteString("3. Every scene must advance the story; cut anything that only restates.\n")
	sb.WriteString("4. Return ONLY the JSON object.\n\n")

	sb.WriteString("Output the JSON object only:")
	return sb.String()
}

const analysisSystem = `You are a veteran broadcast producer reviewing a narration script
before production. You score harshly and justify every deduction.

You MUST respond with ONLY a valid JSON object - no preamble, no markdown.
The object must have integer fields 'hook', 'retention', 'clarity', 'emotion'
(each 0-100), a numeric 'overall' (0-100), and 'feedback': an array of short,
actionable notes, most important first.`

func analysisPrompt(script *Script) string {
	var sb strings.Builder

	sb.WriteString("Review the following script.\n\n")

	sb.WriteString("SCORING CRITERIA:\n")
	sb.WriteString("1. hook: does the opening create a question the viewer needs answered?\n")
	sb.WriteString("2. retention: does each scene pull the viewer into the next?\n")
	sb.WriteString("3. clarity: can the narration be followed on first listen?\n")
	sb.WriteString("4. emotion: does the script make the viewer feel anything?\n\n")

	sb.WriteString("Script JSON:\n")
	writeScriptJSON(&sb, script)

	sb.WriteString("\n\nOutput the JSON object only:")
	return sb.String()
}

func improvePrompt(script *Script, analysis Analysis) string {
	var sb strings.Builder

	sb.WriteString("Rewrite the following script to address the producer feedback.\n\n")

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Keep the topic, facts, and overall length.\n")
	sb.WriteString("2. Fix the weakest scored areas first.\n")
	sb.WriteString("3. Keep everything that already works; do not rewrite for its own sake.\n")
	sb.WriteString("4. Return ONLY the rewritten script as the same JSON structure.\n\n")

	sb.WriteString("Producer feedback:\n")
	feedbackJSON, _ := json.MarshalIndent(analysis, "", "  ")
	sb.Write(feedbackJSON)

	sb.WriteString("\n\nScript JSON:\n")
	writeScriptJSON(&sb, script)

	sb.WriteString("\n\nOutput the rewritten JSON object only:")
	return sb.String()
}

const imagesSystem = `You write prompts for an image generation model, one per scene of a
narration script. Prompts are concrete and visual: subject, setting,
lighting, camera framing. Never include text, captions, or watermarks in
the prompt.

You MUST respond with ONLY a valid JSON array - no preamble, no markdown.
Each object must have 'scene' (1-based scene number) and 'prompt' fields.`

func imagesPrompt(script *Script) string {
	var sb strings.Builder

	sb.WriteString("Write one image prompt per scene for the following script.\n\n")

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. 'scene' values must match the scene order exactly, starting at 1.\n")
	sb.WriteString("2. Keep a consistent visual style across all prompts.\n")
	sb.WriteString("3. Match each prompt to its scene's mood.\n")
	sb.WriteString("4. Return ONLY the JSON array.\n\n")

	sb.WriteString("Script JSON:\n")
	writeScriptJSON(&sb, script)

	sb.WriteString("\n\nOutput the JSON array only:")
	return sb.String()
}

const titlesSystem = `You write YouTube titles for narration-driven videos. Titles are specific,
create curiosity without lying, and stay under 70 characters.

You MUST respond with ONLY a valid JSON array of strings - no preamble,
no markdown, no numbering.`

func titlesPrompt(script *Script, n int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Suggest %d title candidates for the following script.\n\n",
		n,
	))

	sb.WriteString("Script JSON:\n")
	writeScriptJSON(&sb, script)

	sb.WriteString("\n\nOutput the JSON array only:")
	return sb.String()
}

func writeScriptJSON(sb *strings.Builder, script *Script) {
	scriptJSON, _ := json.MarshalIndent(script, "", "  ")
	sb.Write(scriptJSON)
}
