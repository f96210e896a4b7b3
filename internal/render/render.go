package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererPool reuses glamour renderers per option set. TermRenderer is not
// safe for concurrent Render calls, so renderers are pooled, never shared.
type rendererPool struct {
	mu    sync.RWMutex
	pools map[string]*sync.Pool
}

var globalPool = &rendererPool{
	pools: make(map[string]*sync.Pool),
}

func (p *rendererPool) getPool(opts Options) *sync.Pool {
	key := opts.key()

	p.mu.RLock()
	pool, ok := p.pools[key]
	p.mu.RUnlock()
	if ok {
		return pool
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok := p.pools[key]; ok {
		return pool
	}

	pool = &sync.Pool{
		New: func() interface{} {
			r, err := newRenderer(opts)
			if err != nil {
				return nil
			}
			return r
		},
	}
	p.pools[key] = pool
	return pool
}

func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	if r, ok := p.getPool(opts).Get().(*glamour.TermRenderer); ok && r != nil {
		return r, nil
	}
	// New failed inside the pool; retry directly to surface the error
	return newRenderer(opts)
}

func (p *rendererPool) put(opts Options, r *glamour.TermRenderer) {
	if r == nil {
		return
	}
	p.getPool(opts).Put(r)
}

func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(rendererOpts...)
}

// Markdown renders content for terminal display, trimming the trailing
// blank lines glamour appends.
func Markdown(content string, opts Options) (string, error) {
	r, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, r)

	out, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// MarkdownOrPlain renders content, falling back to the raw text on error.
func MarkdownOrPlain(content string, opts Options) string {
	out, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return out
}

// ClearCache drops all pooled renderers.
func ClearCache() {
	globalPool.mu.Lock()
	globalPool.pools = make(map[string]*sync.Pool)
	globalPool.mu.Unlock()
}

// CacheSize returns the number of distinct option sets pooled.
func CacheSize() int {
	globalPool.mu.RLock()
	defer globalPool.mu.RUnlock()
	return len(globalPool.pools)
}
