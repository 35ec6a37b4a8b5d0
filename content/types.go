package content

import "github.com/jagjit/cosmos-folio/system"

// Section is one staggered block of a page
type Section struct {
	Heading string
	Lines   []string
}

// Page is the text rendered for a route
type Page struct {
	Route    string
	Title    string
	Sections []Section
}

// Hero is the landing page identity
type Hero struct {
	Name string
	Role string
	Nav  []string // labels of the side menu, in route order after home
}

// Rings holds the orbiting icon sets
type Rings struct {
	Inner []system.Icon
	Outer []system.Icon
}
