package compiler

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/learnmod/cli/internal/module"
)

// ExampleAssessment returns the worked example written into scaffolded
// assessment files: two questions, three choices each, one correct.
func ExampleAssessment() *module.Assessment {
	return &module.Assessment{
		Questions: []module.Question{
			{
				Content: "Which file declares the structure of a learning module?",
				Choices: []module.Choice{
					{
						Content:     "module.yml",
						IsCorrect:   true,
						Explanation: "Correct. module.yml lists the units and the shared metadata.",
					},
					{
						Content:     "index.yml",
						IsCorrect:   false,
						Explanation: "Incorrect. index.yml is generated from module.yml.",
					},
					{
						Content:     "includes/",
						IsCorrect:   false,
						Explanation: "Incorrect. includes/ holds copied narrative content.",
					},
				},
			},
			{
				Content: "How is a unit's duration estimated when none is declared?",
				Choices: []module.Choice{
					{
						Content:     "From a fixed value per unit",
						IsCorrect:   false,
						Explanation: "Incorrect. The estimate depends on the unit's text.",
					},
					{
						Content:     "From the word count at 250 words per minute",
						IsCorrect:   true,
						Explanation: "Correct. The word count is divided by 250 and rounded up.",
					},
					{
						Content:     "From the number of headings",
						IsCorrect:   false,
						Explanation: "Incorrect. Headings do not affect the estimate.",
					},
				},
			},
		},
	}
}

func encodeAssessment(a *module.Assessment) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(a); err != nil {
		return "", fmt.Errorf("encoding example assessment: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("encoding example assessment: %w", err)
	}
	return buf.String(), nil
}
