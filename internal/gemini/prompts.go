package gemini

import (
	"fmt"
	"strings"
)

const riskCriteria = `RISK ASSESSMENT CRITERIA:
1. HIGH RISK indicators:
   - Claims about health/medical information without sources
   - Political conspiracy theories or election fraud claims
   - Sensational headlines with unverified information
   - Content from known unreliable sources
   - Manipulated statistics or cherry-picked data
   - Urgent/emergency claims designed to cause panic
   - Anti-science or pseudoscience content

2. MEDIUM RISK indicators:
   - Controversial topics with one-sided presentation
   - Emotional language designed to provoke strong reactions
   - Unverified claims about current events
   - Content lacking proper sources or context
   - Potentially misleading headlines

3. LOW RISK indicators:
   - Well-sourced information from reputable outlets
   - Personal opinions clearly marked as such
   - Entertainment or non-factual content
   - Properly contextualized information`

func classifyBatchPrompt(entries []promptEntry) string {
	var b strings.Builder

	b.WriteString("Analyze the following social-platform posts for potential misinformation risk. ")
	b.WriteString("Consider both the post metadata and the actual content.\n\n")

	for i, e := range entries {
		fmt.Fprintf(&b, "POST %d:\n", i+1)
		fmt.Fprintf(&b, "- ID: %s\n", e.ID)
		fmt.Fprintf(&b, "- Title: %s\n", e.Title)
		fmt.Fprintf(&b, "- Community: %s\n", e.Community)
		fmt.Fprintf(&b, "- Score: %d upvotes\n", e.Score)
		fmt.Fprintf(&b, "- Comments: %d\n", e.NumComments)
		fmt.Fprintf(&b, "- Age: %.1f hours\n", e.AgeHours)
		if e.Excerpt != "" {
			fmt.Fprintf(&b, "- Post content: %s\n", e.Excerpt)
		}
		if e.ExternalSummary != "" {
			fmt.Fprintf(&b, "- Linked external content: %s\n", e.ExternalSummary)
		}
		b.WriteString("\n")
	}

	b.WriteString(riskCriteria)
	b.WriteString("\n\nFor every post above, assign exactly one risk level and a one-sentence rationale.\n")
	b.WriteString("Respond with a JSON array in this exact format, one element per post, using the IDs given above:\n")
	b.WriteString(`[{"post_id": "id here", "risk_level": "HIGH|MEDIUM|LOW", "rationale": "one sentence"}]`)

	return b.String()
}

func extractClaimsPrompt(title, body, externalSummary string) string {
	var b strings.Builder

	b.WriteString("You are a misinformation analyst. Summarize the following post and extract the factual claims it makes.\n\n")
	fmt.Fprintf(&b, "TITLE: %s\n", title)
	if body != "" {
		fmt.Fprintf(&b, "POST CONTENT:\n%s\n", body)
	}
	if externalSummary != "" {
		fmt.Fprintf(&b, "LINKED EXTERNAL CONTENT:\n%s\n", externalSummary)
	}

	b.WriteString(`
Extract only assertions of fact that could be checked against external sources.
Skip opinions, questions, jokes, and predictions. Zero claims is a valid answer
for non-factual content.

Respond in this exact JSON format:
{"summary": "two to three sentence summary", "claims": ["claim one", "claim two"]}`)

	return b.String()
}

func analyzeEvidencePrompt(claim string, evidence []evidenceItem) string {
	var b strings.Builder

	b.WriteString("You are a fact-checking expert. Analyze the following claim against the provided fact-checking sources.\n\n")
	fmt.Fprintf(&b, "CLAIM TO VERIFY: %q\n\n", claim)
	b.WriteString("FACT-CHECKING SOURCES:\n")
	for i, e := range evidence {
		fmt.Fprintf(&b, "%d. Title: %s\n   Snippet: %s\n   Link: %s\n\n", i+1, e.Title, e.Snippet, e.URL)
	}

	b.WriteString(`STEP-BY-STEP ANALYSIS:
1. What does each source say ACTUALLY HAPPENED?
2. What does each source say was FAKE or MISLEADING?
3. Based on the evidence, what is the most likely truth about the claim?

Think through this systematically and provide your analysis.

Respond in this exact JSON format:
{"verdict": "true|false|mixed|uncertain", "confidence": "high|medium|low", "reasoning": "your step-by-step reasoning"}`)

	return b.String()
}

func broadenQueryPrompt(query string) string {
	return fmt.Sprintf(`You are a search query optimizer. Given a fact-checking query that returned no results, create an alternative query that might find relevant information.

ORIGINAL QUERY: %q

Create a BROADER query that removes specific assumptions and focuses on key entities and events.

Examples:
- "Is it true the CEO of Astronomer resigned because of toxic workplace allegations?"
  becomes "Astronomer CEO resignation"
- "Did Apple release a new iPhone with 5G in 2023?"
  becomes "Apple iPhone 2023 release"

Respond in this exact JSON format:
{"broader_query": "your broader query here"}`, query)
}
