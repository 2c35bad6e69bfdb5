package markup

import "fmt"

// Declaration returns the inline style entry painting a hero block. Unknown
// kinds are painted as solid.
func (b Background) Declaration() string {
	switch b.Kind {
	case BackgroundImage:
		return fmt.Sprintf("backgroundImage: 'url(%s)'", b.URL)
	case BackgroundGradient:
		return fmt.Sprintf("background: '%s'", linearGradient(b.Direction, b.From, b.To))
	default:
		return fmt.Sprintf("backgroundColor: '%s'", b.Color)
	}
}

// Declaration returns the inline style entry painting a navbar.
func (b NavBackground) Declaration() string {
	if b.Kind == NavBackgroundGradient {
		return fmt.Sprintf("backgroundImage: '%s'", linearGradient(b.Direction, b.Start, b.End))
	}
	return fmt.Sprintf("backgroundColor: '%s'", b.Color)
}

func linearGradient(d Direction, from, to Color) string {
	return fmt.Sprintf("linear-gradient(%s, %s, %s)", d.CSS(), from, to)
}
