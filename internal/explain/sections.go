// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import "sort"

// sectionExplanations maps a statute section code to its fixed explanatory
// block. This is static domain content reproduced from the requirements
// document; it deliberately does not cover every code the label decoder can
// produce — unmapped codes fall through to the generic fallback.
var sectionExplanations = map[string]string{
	"302": `Murder:
- Punishment: Death or imprisonment for life, and fine
- For proving murder, the prosecution must establish intention to cause death
- The case must show premeditation or intention to cause bodily injury sufficient to cause death`,

	"304": `Culpable Homicide Not Amounting to Murder:
- Punishment: Imprisonment for life, or up to 10 years, and fine
- Applies when death is caused without the intention to cause death
- May apply when the act is done with the knowledge that it is likely to cause death`,

	"304A": `Death by Negligence:
- Punishment: Imprisonment up to 2 years, or fine, or both
- Applies when death is caused by a rash or negligent act
- No intention to cause death or knowledge that the act would likely cause death`,

	"308": `Attempt to Commit Culpable Homicide:
- Punishment: Imprisonment up to 3 years, or fine, or both
- Applies when an act is done with the intention of causing culpable homicide
- The attempt does not result in death`,

	"319": `Hurt:
- Punishment: Imprisonment up to 1 year, or fine up to 1,000 rupees, or both
- Causing bodily pain, disease, or infirmity to any person
- Includes physical injury that causes pain`,

	"320": `Grievous Hurt:
- Punishment: Imprisonment up to 7 years, and fine
- Includes emasculation, permanent privation of sight or hearing, fracture or dislocation of bones, or any hurt which endangers life`,

	"376": `Rape:
- Punishment: Rigorous imprisonment for a term not less than 7 years, may extend to life, and fine
- Sexual intercourse without consent or with consent obtained under fear, threat, or false promises`,

	"379": `Theft:
- Punishment: Imprisonment up to 3 years, or fine, or both
- Involves dishonestly taking property without consent
- Must be done with the intention to permanently deprive the owner of the property`,

	"392": `Robbery:
- Punishment: Rigorous imprisonment up to 10 years, and fine
- Theft with the use of force or fear of force
- Includes attempt to cause death, hurt, or wrongful restraint to commit theft`,

	"420": `Cheating and Dishonestly Inducing Delivery of Property:
- Punishment: Imprisonment up to 7 years and fine
- Involves fraudulent or deceptive practices resulting in wrongful gain
- Must show intention to defraud from the beginning`,

	"499": `Defamation:
- Punishment: Simple imprisonment up to 2 years, or fine, or both
- Making or publishing imputations concerning any person with intent to harm their reputation
- Exceptions include truth for public good, fair comment on public conduct, etc.`,

	"300": `Definition of Murder:
- When the act is done with the intention of causing death
- When the act is done with the intention of causing bodily injury likely to cause death
- When the act is done with the knowledge that it is likely to cause death`,

	"100": `Right of Private Defence of the Body Extending to Causing Death:
- No punishment as it is a defense, not an offense
- Applies when there is reasonable apprehension of death or grievous hurt
- The threat must be immediate and not avoidable by other means
- Force used must be proportionate to the threat`,

	"76": `Act Done by a Person Bound by Law:
- No offense if the act is done by a person who is bound by law to do it
- The person must believe in good faith that they are bound by law to do the act`,

	"79": `Act Done by a Person Justified by Law:
- No offense if the act is justified by law
- The person must believe in good faith that they are justified by law to do the act`,
}

// Section returns the explanatory block for a section code, and whether the
// code is covered by the static table.
func Section(code string) (string, bool) {
	text, ok := sectionExplanations[code]
	return text, ok
}

// SectionCodes returns the covered section codes in sorted order.
func SectionCodes() []string {
	codes := make([]string, 0, len(sectionExplanations))
	for code := range sectionExplanations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
