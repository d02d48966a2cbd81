package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" // browser/web
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher
	IconArrow     = "" // arrow right

	IconCheck   = ""
	IconX       = ""
	IconWarning = ""
	IconInfo    = ""
	IconConfig  = ""
	IconFile    = ""
)
