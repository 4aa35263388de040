package prompt

const organicInstructions = `ORGANIC CONTENT MODE - STRICT REQUIREMENTS:
- generate purely educational content with zero promotional elements
- share genuine knowledge, insights and practical tips
- do not mention products, services, apps, tools or anything that reads as promotion
- no calls to purchase, sign up, download or visit external links
- no "limited time", "special offer", "our solution", "buy now" or similar language
- keep a conversational, authentic tone, like a helpful teacher
- the cta must be an engagement question about the reader's own experience, never a sales action`

const structureDirective = `STRUCTURE (EXACTLY THREE PARTS):
1. HOOK: one scroll-stopping opening sentence that sparks curiosity or challenges a common belief
2. SLIDES: exactly 5 body slides, each one a standalone, actionable idea written in short lowercase sentences
3. CTA: one closing line for the final slide
Also provide 5 to 7 short visual search terms describing stock images that fit the slides.
Write in lowercase with no emojis and no markdown.`

const variationsDirective = `HOOK VARIATIONS:
- write exactly 3 different hooks for the same slideshow, each with a different angle
- set selectedHookIndex to the 0-based position of the strongest one`

const contractHeader = `OUTPUT CONTRACT:
Respond with a single JSON object and nothing else: no markdown fences, no prose before or after.
Use exactly this shape:`

const schemaHeader = `The object must validate against this JSON schema:`
