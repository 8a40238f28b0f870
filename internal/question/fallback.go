package question

import "fmt"

// FallbackDrafts is the deterministic list served whenever generation is
// unavailable: two technical and two behavioral prompts.
func FallbackDrafts(jobTitle string) []Draft {
	return []Draft{
		{Type: TypeTechnical, Text: fmt.Sprintf("What are common data structures used by a %s?", jobTitle)},
		{Type: TypeTechnical, Text: "Explain the difference between concurrency and parallelism."},
		{Type: TypeBehavioral, Text: "Tell me about a time you handled a tight deadline."},
		{Type: TypeBehavioral, Text: "Describe a conflict with a teammate and how you resolved it."},
	}
}
