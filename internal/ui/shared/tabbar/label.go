package tabbar

import "github.com/zjrosen/tabbar/internal/ui/icons"

// Kind identifies what a Label shows.
type Kind int

const (
	// KindIcon is a label with only an icon.
	KindIcon Kind = iota
	// KindText is a label with only text.
	KindText
	// KindIconText is a label with an icon followed by text.
	KindIconText
)

func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindText:
		return "text"
	case KindIconText:
		return "icon+text"
	default:
		return "unknown"
	}
}

// Label is the visible content of one tab. Build it with IconLabel,
// TextLabel or IconTextLabel; it is immutable afterwards.
type Label struct {
	kind Kind
	icon icons.Icon
	text string
}

// IconLabel returns a label showing only icon.
func IconLabel(icon icons.Icon) Label {
	return Label{kind: KindIcon, icon: icon}
}

// TextLabel returns a label showing only text.
func TextLabel(text string) Label {
	return Label{kind: KindText, text: text}
}

// IconTextLabel returns a label showing icon followed by text.
func IconTextLabel(icon icons.Icon, text string) Label {
	return Label{kind: KindIconText, icon: icon, text: text}
}

// Kind reports which variant l is.
func (l Label) Kind() Kind { return l.kind }

// Icon returns the label's icon, if it has one.
func (l Label) Icon() (icons.Icon, bool) {
	return l.icon, l.kind != KindText
}

// Text returns the label's text, if it has one.
func (l Label) Text() (string, bool) {
	return l.text, l.kind != KindIcon
}

func (l Label) hasIcon() bool { return l.kind != KindText }
func (l Label) hasText() bool { return l.kind != KindIcon }

// String renders the label as plain text, for logs and status lines.
func (l Label) String() string {
	switch l.kind {
	case KindIcon:
		return icons.Glyph(l.icon)
	case KindText:
		return l.text
	default:
		return icons.Glyph(l.icon) + " " + l.text
	}
}
