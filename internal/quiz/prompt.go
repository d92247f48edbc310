package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert psychometrician creating questions for a fun, mobile IQ test app.`

// buildUserMessage asks for count questions across the reasoning categories.
func buildUserMessage(count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a list of %d unique multiple-choice questions that test various aspects of fluid intelligence, including %s.\n\n",
		count, strings.ToLower(strings.Join(Categories[:len(Categories)-1], ", ")+" and "+Categories[len(Categories)-1]))
	b.WriteString("Ensure the questions have a mix of difficulties (easy, medium, hard).\n")
	fmt.Fprintf(&b, "Each question must have exactly %d options.\n", OptionCount)
	b.WriteString("Set questionType to one of: " + strings.Join(Categories, ", ") + ".\n")
	b.WriteString("For any visual questions, use placeholder images from https://picsum.photos/400/200?random=SEED, where SEED is a unique integer for each image.\n")
	b.WriteString(`The output must be a JSON object of the form {"questions": [...]}, adhering to the provided schema.`)

	return b.String()
}
