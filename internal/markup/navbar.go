package markup

type navbarView struct {
	Declaration string
	LogoURL     string
	Items       []MenuItem
	AuthLabel   string
}

// RenderNavbar returns the JSX component for cfg. Menu items keep their
// stored order and use their id as the React key.
func RenderNavbar(cfg NavbarConfig) string {
	return execute("navbar.jsx.tmpl", navbarView{
		Declaration: cfg.Background.Declaration(),
		LogoURL:     cfg.LogoURL,
		Items:       cfg.MenuItems,
		AuthLabel:   cfg.Auth.Label(),
	})
}
