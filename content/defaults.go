package content

import (
	"github.com/jagjit/cosmos-folio/route"
	"github.com/jagjit/cosmos-folio/system"
)

// DefaultHero is the built-in landing identity
func DefaultHero() Hero {
	return Hero{
		Name: "JAGJIT",
		Role: "Developer",
		Nav:  []string{"About", "Experience", "Projects"},
	}
}

// DefaultRings lists the tools orbiting the hero
func DefaultRings() Rings {
	return Rings{
		Inner: []system.Icon{
			{ID: "go", Label: "Go", Alt: "Go"},
			{ID: "ts", Label: "TS", Alt: "TypeScript"},
			{ID: "react", Label: "Re", Alt: "React"},
			{ID: "next", Label: "Nx", Alt: "Next.js"},
			{ID: "node", Label: "Nd", Alt: "Node.js"},
		},
		Outer: []system.Icon{
			{ID: "docker", Label: "Dk", Alt: "Docker"},
			{ID: "k8s", Label: "K8", Alt: "Kubernetes"},
			{ID: "pg", Label: "Pg", Alt: "PostgreSQL"},
			{ID: "redis", Label: "Rd", Alt: "Redis"},
			{ID: "aws", Label: "AW", Alt: "AWS"},
			{ID: "git", Label: "Gt", Alt: "Git"},
			{ID: "linux", Label: "Lx", Alt: "Linux"},
		},
	}
}

// defaultPages is used for any route without a content file
var defaultPages = map[string]Page{
	route.Home: {
		Route: route.Home,
		Title: "Home",
	},
	route.About: {
		Route: route.About,
		Title: "ABOUT ME",
		Sections: []Section{
			{Lines: []string{
				"I am a software engineer obsessed with the intersection of performance",
				"and aesthetics. While the universe is chaotic, I believe code should",
				"be structured, efficient, and beautiful.",
			}},
			{Lines: []string{"[h] Return to Orbit"}},
		},
	},
	route.Experience: {
		Route: route.Experience,
		Title: "EXPERIENCE",
		Sections: []Section{
			{Heading: "Software Engineer", Lines: []string{
				"Building services and interfaces that stay fast under load.",
			}},
			{Heading: "Open Source", Lines: []string{
				"Small tools, big curiosity.",
			}},
			{Lines: []string{"[h] Return to Orbit"}},
		},
	},
	route.Projects: {
		Route: route.Projects,
		Title: "PROJECTS",
		Sections: []Section{
			{Heading: "cosmos-folio", Lines: []string{
				"A portfolio that reacts to how fast you scroll.",
			}},
			{Heading: "More soon", Lines: []string{
				"The orbit is still expanding.",
			}},
			{Lines: []string{"[h] Return to Orbit"}},
		},
	},
}
