package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFolder   = "\uf07b" // folder
	IconCursor   = "\uf054" // chevron-right
	IconPlus     = "\uf067" // plus
	IconMinus    = "\uf068" // minus
	IconPane     = "\uf0db" // columns
	IconGrid     = "\uf00a" // th
	IconClock    = "\uf017" // clock
	IconExpand   = "\uf065" // expand
	IconVersion  = "\uf02b" // tag
	IconGo       = "\ue627" // go gopher
)
