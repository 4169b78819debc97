package fdiff

type cacheKey struct {
	target string
	params Params
	// f(x0) and f'(x0) tell apart different functions sharing a name.
	fx0, dfx0 float64
}

// Cache memoizes Analyze by target and parameters. Targets are identified by
// name together with f(x0) and f'(x0). Failed runs are not cached. Reports
// are shared between hits and must not be modified.
type Cache struct {
	entries map[cacheKey]*Report
	hits    int
	misses  int
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Report)}
}

func (c *Cache) Analyze(t Target, p Params) (*Report, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	key := cacheKey{target: t.Name, params: p, fx0: t.F(p.X0), dfx0: t.DF(p.X0)}
	if r, ok := c.entries[key]; ok {
		c.hits++
		return r, nil
	}
	c.misses++

	r, err := Analyze(t, p)
	if err != nil {
		return nil, err
	}
	c.entries[key] = r
	return r, nil
}

func (c *Cache) Len() int { return len(c.entries) }

// Stats returns the hit and miss counts.
func (c *Cache) Stats() (hits, misses int) { return c.hits, c.misses }

func (c *Cache) Reset() {
	c.entries = make(map[cacheKey]*Report)
	c.hits, c.misses = 0, 0
}
