package derive

const locationPrompt = `You are a location normalizer. Given a location, return the uppercase state name if it's a US location, or the uppercase country name if it's outside the US. If it's a city, return the state (for US) or country it's in. If unsure or the location is invalid, return "UNKNOWN".

Examples:
- New York City -> NEW YORK
- New York-> NEW YORK
- London -> UNITED KINGDOM
- California -> CALIFORNIA
- Tokyo -> JAPAN
- Paris, France -> FRANCE
- Sydney -> AUSTRALIA
- 90210 -> CALIFORNIA
- Earth -> UNKNOWN`

const countryPrompt = `You are a country normalizer. Given a location, return the uppercase country name. If it's a US location (city or state), return "UNITED STATES". For other locations, return the uppercase country name. If unsure or the location is invalid, return "UNKNOWN".

Examples:
- New York City -> UNITED STATES
- New York -> UNITED STATES
- London -> UNITED KINGDOM
- California -> UNITED STATES
- Tokyo -> JAPAN
- Paris, France -> FRANCE
- Sydney -> AUSTRALIA
- 90210 -> UNITED STATES
- Earth -> UNKNOWN`

const miniSummaryPrompt = "You are to take in this person's LinkedIn profile data, and generate a 1-2 sentence summary of their experience"

const summaryPrompt = "You are to take in this person's LinkedIn profile data, and generate a list of their hard skills amount of experience and specification"

const skillsPrompt = "You are to take in this person's LinkedIn profile data and generate a JSON object with three fields: 'tech', 'features', and 'isEngineer'. The 'tech' field should contain a JSON array of strings representing the hard tech skills they are most familiar with. The 'features' field should contain a JSON array of strings representing the top hard features they have worked on the most. The 'isEngineer' field should be a boolean value indicating whether this person is likely an engineer based on their profile."

const conditionPrompt = `You are to return a valid parseable JSON object with one attribute "condition" which can either be true or false. All questions users ask will always be able to be answered in a yes or no. An example response would be { "condition": true }`
