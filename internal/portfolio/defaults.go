package portfolio

var (
	AboutMe = `A developer creating sleek, modern web experiences with passion, ai,
and precision.`

	PeteyGen = `AI-powered video creation platform that transforms simple scripts into engaging, character-driven animations and audio in seconds`

	PAPFoundation = `PAP Treatment Tracker App is a free app that helps patients with PAP manage their treatment and track their treatments.`

	VGLB = `Full-stack web application for video game reviews and discussions. DISCONTINUED`

	PokerBot = `Ai model built to counter the style of play of a poker player. Utilized reinforcement learning and custom poker environment for training. Full white paper available.`

	PromiseLocket = `Iphone app to track promises to onself and hold oneself accountable. Uses new iOS 17 features such as Live Activities and Widgets integrated as native modules.`
)

// Default is the hand-written site content.
func Default() Content {
	return Content{
		Meta: Meta{
			Title:       "ChaseX - Portfolio",
			Description: "Welcome to my portfolio website.",
			Icon:        "/wall.jpeg",
			IconType:    "image/jpeg",
		},
		Profile: Profile{
			Name:    "Chase Hameetman",
			Tagline: AboutMe,
			Links: []Link{
				{Name: "Resume", Href: "/resume.pdf"},
				{Name: "Email", Href: "mailto:chasejh1@gmail.com"},
				{Name: "LinkedIn", Href: "https://www.linkedin.com/in/chase-hameetman/"},
				{Name: "GitHub", Href: "https://github.com/uChase"},
				{Name: "Doom", Href: "/doom", Accent: "danger"},
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "PeteyGen.AI",
				Description: PeteyGen,
				TechStack:   []string{"Next.js", "TypeScript", "Prisma", "PostgreSQL", "AWS", "Redis", "Hugging Face", "Modal"},
				Link:        "https://peteygen.ai",
				Image:       "/PeteyLogo.png",
			},
			{
				ID:          2,
				Title:       "PAP Foundation",
				Description: PAPFoundation,
				TechStack:   []string{"React Native", "Apple Devices", "Firebase", "Expo"},
				Link:        "https://apps.apple.com/us/app/pap-foundation/id6450156978?l=vi",
				Image:       "/PAPLogo.webp",
			},
			{
				ID:          3,
				Title:       "VGLB",
				Description: VGLB,
				TechStack:   []string{"Javascript", "Nextjs", "Prisma", "Vercel"},
				Link:        "https://github.com/uChase/VGLB",
				Image:       "/VGLBlogo.png",
			},
			{
				ID:          4,
				Title:       "AI Poker Bot",
				Description: PokerBot,
				TechStack:   []string{"Python", "Pytorch"},
				Link:        "https://github.com/uChase/PokerBot/blob/main/WhitePaper.pdf",
				Image:       "/PokerLogo.png",
			},
			{
				ID:          4,
				Title:       "Promise Locket",
				Description: PromiseLocket,
				TechStack:   []string{"Swift", "UIKit", "React Native"},
				Link:        "https://github.com/uChase/PromiseLocket",
				Image:       "/PLlogo.png",
			},
		},
	}
}
