package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	assert.Len(t, Pages(), 8)
	nav := Sidebar()
	require.Len(t, nav, 7)
	assert.Equal(t, Home, nav[0].Path)
	for _, p := range nav {
		assert.NotEqual(t, ComputationalCore, p.Path)
	}

	core, ok := Lookup(ComputationalCore)
	require.True(t, ok)
	assert.Equal(t, "Computational Core", core.Title)
	assert.False(t, core.Sidebar())

	_, ok = Lookup("/nowhere")
	assert.False(t, ok)
}

func TestRouter_GoAndListeners(t *testing.T) {
	r := NewRouter("")
	assert.Equal(t, Home, r.Current().Path)

	var seen []string
	r.OnChange(func(from, to Page) { seen = append(seen, from.Path+">"+to.Path) })

	require.NoError(t, r.Go(ComputationalCore))
	require.NoError(t, r.Go(ComputationalCore))
	assert.Equal(t, []string{"/>/computational-core"}, seen)
	assert.Equal(t, 1, r.Depth())

	assert.ErrorIs(t, r.Go("/missing"), ErrUnknownRoute)
	assert.Equal(t, ComputationalCore, r.Current().Path)
}

func TestRouter_Back(t *testing.T) {
	r := NewRouter(Home)
	r.Navigate(Projects)
	r.Navigate(Blog)
	require.True(t, r.Back())
	assert.Equal(t, Projects, r.Current().Path)
	require.True(t, r.Back())
	assert.Equal(t, Home, r.Current().Path)
	assert.False(t, r.Back())
}

func TestRouter_NestedNavigationIsQueued(t *testing.T) {
	r := NewRouter(Home)
	var order []string
	r.OnChange(func(from, to Page) {
		order = append(order, "a:"+to.Path)
		if to.Path == About {
			r.Navigate(Resume)
		}
	})
	r.OnChange(func(from, to Page) { order = append(order, "b:"+to.Path) })

	r.Navigate(About)
	assert.Equal(t, []string{"a:/about", "b:/about", "a:/resume", "b:/resume"}, order)
	assert.Equal(t, Resume, r.Current().Path)
}
