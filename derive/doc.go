// Package derive computes the typed features of a person from provider
// payloads: normalized location and country, skills and summaries from a
// LinkedIn profile, yes/no conditions, GitHub and X aggregates, the X
// ranking score, and company technology stacks.
//
// Model-backed derivations run through the shared rate-limit executor. They
// degrade to a documented fallback value when the model call fails, except
// GatherTopSkills, whose result is required for a record to be ingested.
package derive
