// Package route holds the fixed page table of the site and the navigator that
// moves between pages.
package route

// Well-known paths
const (
	Home              = "/"
	Projects          = "/projects"
	About             = "/about"
	Blog              = "/blog"
	FinLab            = "/finlab"
	NumLab            = "/numlab"
	Resume            = "/resume"
	ComputationalCore = "/computational-core"
)

// Page is one entry of the route table
type Page struct {
	Path  string
	Label string // sidebar label, empty for pages reached only by navigation
	Title string
	Body  []string
}

// Sidebar reports whether the page is listed in the sidebar
func (p Page) Sidebar() bool {
	return p.Label != ""
}

var pages = []Page{
	{
		Path:  Home,
		Label: "Home",
		Title: "NodeLab",
	},
	{
		Path:  Projects,
		Label: "Projects",
		Title: "Project Playground",
		Body: []string{
			"Explore interactive demos, simulations, and code examples across",
			"machine learning, finance, and numerical computing.",
			"",
			"Neural Network Visualizer",
			"  Interactive visualization of neural network architectures and training processes.",
			"Quantitative Trading System",
			"  Real-time trading simulator with advanced portfolio optimization.",
			"Numerical Methods Library",
			"  High-performance numerical computation library for scientific computing.",
		},
	},
	{
		Path:  About,
		Label: "About",
		Title: "About NodeLab",
		Body: []string{
			"A next-generation platform for exploring the intersection of",
			"mathematics, finance, and computer science through interactive",
			"visualizations and simulations.",
			"",
			"Global Reach     Connected with researchers and developers worldwide",
			"Open Knowledge   Sharing insights through interactive learning",
			"Live Code        Real-time simulations and computations",
		},
	},
	{
		Path:  Blog,
		Label: "Blog",
		Title: "Blog",
		Body: []string{
			"Daily Article",
			"  Explore today's featured academic paper on quantitative finance and algorithmic trading.",
			"Daily Video",
			"  Watch our latest video on advanced trading strategies and mathematical concepts.",
		},
	},
	{
		Path:  FinLab,
		Label: "FinLab",
		Title: "Finance Laboratory",
		Body:  []string{"Interactive financial modeling and analysis tools coming soon."},
	},
	{
		Path:  NumLab,
		Label: "NumLab",
		Title: "Numerical Laboratory",
		Body: []string{
			"Explore numerical methods and computational mathematics.",
			"Interactive demos coming soon.",
		},
	},
	{
		Path:  Resume,
		Label: "Resume",
		Title: "Resume",
	},
	{
		Path:  ComputationalCore,
		Title: "Computational Core",
		Body:  []string{"The central nexus of our advanced computing infrastructure"},
	},
}

// Pages returns the route table in sidebar order
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Sidebar returns the pages listed in the sidebar
func Sidebar() []Page {
	var out []Page
	for _, p := range pages {
		if p.Sidebar() {
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds the page for path
func Lookup(path string) (Page, bool) {
	for _, p := range pages {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}
