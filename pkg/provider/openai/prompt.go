package openai

import "fmt"

// BuildPrompt creates the instruction text sent to the backend. It is a
// pure function of its inputs: the same prompt/response pair always yields
// the same text.
//
// The instruction constrains the backend to a single JSON object with
// exactly one key, "assumptions", holding an array of strings, each
// starting with "The user". That shape is requested, not enforced;
// ParseAssumptions must cope with output that ignores it.
func BuildPrompt(userPrompt, aiResponse string) string {
	return fmt.Sprintf(
		"You are an expert reasoning analyst AI focused on improving LLM interpretability. "+
			"Given a user prompt and an AI's response, reconstruct the most probable internal chain-of-thought behind the AI's reply. "+
			"Analyze how the AI interpreted the user's intent, background knowledge, and expectations. "+
			"Explain its choice of explanation style, examples, and level of detail.\n\n"+
			"User prompt:\n%s\n\n"+
			"AI response:\n%s\n\n"+
			"Return ONLY a JSON object with the key:\n"+
			"\"assumptions\": a detailed list of all explicit and implicit assumptions the AI made "+
			"about the user's background, intent, or expectations. Do NOT include any extra explanation or divide into categories. "+
			"Start each assumption with 'The user'",
		userPrompt, aiResponse,
	)
}
