// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explain selects canned explanatory and advisory text for an
// analysis: a fixed explanation per predicted section code (with textual
// special cases taking priority over the prediction) and a fixed
// recommendation per confidence band.
package explain

import (
	"fmt"
	"strings"
)

// selfDefenseExplanation is returned whenever the raw text mentions
// self-defense, regardless of the predicted section.
const selfDefenseExplanation = `It depends on the circumstances. If Person B kills Person A in self-defense to protect himself, then Person B would NOT be considered guilty of murder or culpable homicide.

This scenario is covered under Section 100 of IPC (Right of Private Defence of the Body Extending to Causing Death):
- This allows a person to cause death in self-defense when there is reasonable apprehension of death or grievous hurt
- For self-defense to be valid, the threat must be immediate and not avoidable by other means
- The force used must be proportionate to the threat

If the case involves excessive force beyond what was necessary for self-defense, Person B may be guilty of culpable homicide not amounting to murder under Section 304.

If death occurred due to actions taken as part of legitimate self-defense, Person B would not be considered guilty at all.`

// laborLawExplanation is returned when the raw text mentions wage or labor
// topics and no self-defense cue is present.
const laborLawExplanation = `Failure to pay minimum wage is primarily a violation under labor laws, specifically:

1. The Minimum Wages Act, 1948:
   - Section 22: Imprisonment up to 6 months or fine up to 500 rupees, or both
   - Employers are legally obligated to pay at least the minimum wage as notified

2. Under the Indian Penal Code, it may be considered:
   - Section 420 (Cheating): If the employer induced work with no intention to pay
   - May also be considered as criminal breach of trust in certain circumstances

The employee can:
1. File a complaint with the Labor Commissioner
2. File a civil suit for recovery of wages
3. In egregious cases, file a criminal complaint for cheating

The exact penalty depends on:
- Whether this was a systematic practice
- Number of employees affected
- Duration of non-payment
- Whether there was deceit involved`

// Explain returns the explanatory text for a predicted section. Textual
// special cases in the raw case text override the prediction entirely:
// self-defense first, then labor-law topics, then the static section table,
// then a generic fallback naming the code.
func Explain(section, caseText string) string {
	lowered := strings.ToLower(caseText)

	if strings.Contains(lowered, "self-defense") || strings.Contains(lowered, "self defense") {
		return selfDefenseExplanation
	}
	if strings.Contains(lowered, "minimum wage") || strings.Contains(lowered, "labor") || strings.Contains(lowered, "employer") {
		return laborLawExplanation
	}

	if text, ok := Section(section); ok {
		return text
	}
	return fmt.Sprintf("Section %s of the Indian Penal Code", section)
}

// Advisory text per confidence band.
const (
	highConfidenceAdvice = `Recommendations:
- Strong confidence in legal analysis
- Recommended to proceed with legal proceedings under the identified section
- Document all evidence thoroughly`

	moderateConfidenceAdvice = `Recommendations:
- Moderate confidence in legal analysis
- Further investigation and evidence gathering recommended
- Consider consulting a legal expert for case-specific advice`

	lowConfidenceAdvice = `Recommendations:
- Low confidence in automated analysis
- Consult legal experts for detailed evaluation
- Consider gathering more case details and evidence
- Complex case may involve multiple legal provisions`
)

// Recommend returns the advisory text for a confidence percentage. The
// bands are confidence > 80, 60 < confidence <= 80, and confidence <= 60;
// the boundary values 80 and 60 belong to the band below.
func Recommend(confidence float64) string {
	switch {
	case confidence > 80:
		return highConfidenceAdvice
	case confidence > 60:
		return moderateConfidenceAdvice
	default:
		return lowConfidenceAdvice
	}
}
