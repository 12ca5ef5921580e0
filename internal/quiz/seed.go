package quiz

var seedQuestions = []Question{
	// Tenses
	{
		Category:    CategoryTense,
		Prompt:      "Yesterday, I _____ (go) to the store.",
		Answer:      "went",
		Options:     []string{"go", "went", "gone", "going"},
		Explanation: "'Went' is the past tense of 'go'.",
	},
	{
		Category:    CategoryTense,
		Prompt:      "By next month, she _____ (complete) her project.",
		Answer:      "will have completed",
		Options:     []string{"completes", "completed", "will complete", "will have completed"},
		Explanation: "'Will have completed' is the future perfect tense, used for actions that will be finished before a point in the future.",
	},
	{
		Category:    CategoryTense,
		Prompt:      "They _____ (work) on this problem for three hours now.",
		Answer:      "have been working",
		Options:     []string{"work", "are working", "have been working", "worked"},
		Explanation: "'Have been working' is the present perfect continuous tense, used for actions that began in the past and continue up to now.",
	},

	// Prepositions
	{
		Category:    CategoryPreposition,
		Prompt:      "The book is _____ the table.",
		Answer:      "on",
		Options:     []string{"in", "on", "at", "under"},
		Explanation: "'On' is used when something is positioned on the surface of something else.",
	},
	{
		Category:    CategoryPreposition,
		Prompt:      "We arrived _____ the airport at 9pm.",
		Answer:      "at",
		Options:     []string{"to", "at", "in", "on"},
		Explanation: "'At' is used for specific points/locations like airports, stations, etc.",
	},
	{
		Category:    CategoryPreposition,
		Prompt:      "She's been living in Paris _____ 2020.",
		Answer:      "since",
		Options:     []string{"for", "since", "during", "while"},
		Explanation: "'Since' is used with a specific point in time when something began.",
	},

	// Phrasal verbs
	{
		Category:    CategoryPhrasalVerb,
		Prompt:      "Can you _____ (look after) my cat while I'm away?",
		Answer:      "look after",
		Options:     []string{"look at", "look for", "look after", "look up"},
		Explanation: "'Look after' means to take care of someone or something.",
	},
	{
		Category:    CategoryPhrasalVerb,
		Prompt:      "I need to _____ (fill out) this application form.",
		Answer:      "fill out",
		Options:     []string{"fill in", "fill out", "fill up", "fill with"},
		Explanation: "'Fill out' means to complete a form or document with the required information.",
	},
	{
		Category:    CategoryPhrasalVerb,
		Prompt:      "Please _____ (turn off) the lights when you leave.",
		Answer:      "turn off",
		Options:     []string{"turn up", "turn down", "turn on", "turn off"},
		Explanation: "'Turn off' means to stop a device from working by operating its switch.",
	},

	// Idioms
	{
		Category:    CategoryIdiom,
		Prompt:      "Finding that old photo album was a real _____ down memory lane.",
		Answer:      "trip",
		Options:     []string{"walk", "journey", "trip", "drive"},
		Explanation: "'A trip down memory lane' is an idiom meaning to remember or reminisce about past experiences.",
	},
	{
		Category:    CategoryIdiom,
		Prompt:      "Learning a new language isn't easy, but it's _____ the effort.",
		Answer:      "worth",
		Options:     []string{"value", "worth", "deserving", "meriting"},
		Explanation: "'Worth the effort' means something deserves the time and energy invested in it.",
	},
}
