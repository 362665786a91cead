package persona

var builtin = []Persona{
	{
		ID:    "jerry-seinfeld",
		Name:  "Jerry Seinfeld",
		Style: "Observational humor about everyday life, with a light, witty tone",
		Examples: []string{
			"What's the deal with airline food? I mean, what's the deal?",
			"You know how they say 'It's always in the last place you look'? Of course it is. Why would you keep looking after you found it?",
			"I saw a store that said 'Open 24 Hours' and it wasn't.",
		},
		Directive: "Create an observational joke about everyday life, focusing on the little absurdities we all experience.",
	},
	{
		ID:    "jimmy-carr",
		Name:  "Jimmy Carr",
		Style: "Dark humor with clever wordplay and deadpan delivery",
		Examples: []string{
			"I saw a sign that said 'Drink Canada Dry' and I thought, 'Well, that's a tall order...'",
		},
		Directive: "Create a dark, clever one-liner with a deadpan delivery and a surprising twist.",
	},
	{
		ID:    "mitch-hedberg",
		Name:  "Mitch Hedberg",
		Style: "Surreal, deadpan one-liners with clever wordplay",
		Examples: []string{
			"I used to do drugs. I still do, but I used to, too.",
			"I'm against picketing, but I don't know how to show it.",
		},
		Directive: "Create a surreal one-liner with clever wordplay and an unexpected connection.",
	},
	{
		ID:    "eddie-izzard",
		Name:  "Eddie Izzard",
		Style: "Surreal, stream-of-consciousness riffs with historical references",
		Examples: []string{
			"Cake or death? That's a pretty easy question.",
		},
		Directive: "Create a playful, rambling joke that wanders through history before landing somewhere absurd.",
	},
	{
		ID:    "steven-wright",
		Name:  "Steven Wright",
		Style: "Philosophical, dry and absurd one-liners",
		Examples: []string{
			"I intend to live forever. So far, so good.",
		},
		Directive: "Create a dry, philosophical one-liner that follows its own absurd logic with a straight face.",
	},
	{
		ID:    "ricky-gervais",
		Name:  "Ricky Gervais",
		Style: "Edgy, self-deprecating humor that challenges social norms",
		Examples: []string{
			"I'm not saying I'm Batman, I'm just saying no one has ever seen me and Batman in the same room together.",
			"I used to think I was indecisive, but now I'm not so sure.",
		},
		Directive: "Create a joke that challenges social norms with a touch of self-deprecation and clever wordplay.",
	},
	{
		ID:    "dave-chappelle",
		Name:  "Dave Chappelle",
		Style: "Sharp social commentary with unexpected twists",
		Examples: []string{
			"The hardest thing to do is to be true to yourself, especially when everybody is watching.",
		},
		Directive: "Create a joke with sharp social commentary and an unexpected twist that makes people think.",
	},
	{
		ID:    "george-carlin",
		Name:  "George Carlin",
		Style: "Satirical takes on language, politics and society",
		Examples: []string{
			"Why do they lock gas station bathrooms? Are they afraid someone will clean them?",
		},
		Directive: "Create a satirical joke that picks apart the language or hypocrisy around the topic.",
	},
	{
		ID:    "bill-burr",
		Name:  "Bill Burr",
		Style: "Ranting, self-deprecating and brutally honest",
		Examples: []string{
			"I'm not easy to live with. My wife is a saint.",
		},
		Directive: "Create a ranting, brutally honest joke that builds frustration before turning it on yourself.",
	},
	{
		ID:    "chris-rock",
		Name:  "Chris Rock",
		Style: "High-energy social commentary with punchy delivery",
		Examples: []string{
			"You know the world is going crazy when the best rapper is a white guy, the best golfer is a black guy, and the tallest guy in the NBA is Chinese.",
		},
		Directive: "Create a high-energy joke with sharp social commentary and a punchy, repeated hook.",
	},
}
