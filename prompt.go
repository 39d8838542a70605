package digest

import "fmt"

// lengthDirectives map each summary length to its paragraph budget in the
// model instruction.
var lengthDirectives = map[Length]string{
	LengthShort:  "1-2 paragraphs",
	LengthMedium: "3-4 paragraphs",
	LengthLong:   "5-7 paragraphs",
}

// SummarySystemPrompt is the system instruction shared by all AI providers.
const SummarySystemPrompt = "You summarize web articles. Base the summary only on the provided article text, keep it faithful to the source, and write in clear prose."

// SummaryInstruction builds the user-facing instruction for a summarization
// request: a length directive and, if requested, a key-points directive
// whose label matches what ParseSummaryResponse recognizes.
func SummaryInstruction(opts SummarizeOptions) string {
	length := opts.Length
	if length == "" {
		length = LengthMedium
	}

	directive, ok := lengthDirectives[length]
	if !ok {
		directive = lengthDirectives[LengthMedium]
	}

	instruction := fmt.Sprintf("Summarize the following article in %s.", directive)
	if opts.IncludeKeyPoints {
		instruction += " After the summary, add a section labeled \"Key Points:\" listing the most important takeaways as bullet points."
	}

	return instruction
}
