// seehuhn.de/go/panel - bevelled and stepped panel outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package panel

import (
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// defaultCacheSize is the number of layouts a Cache keeps if no size is
// given.
const defaultCacheSize = 256

// Cache memoises layouts.  Since layouts depend only on their inputs,
// repeated requests for the same panel, for example during interactive
// resizing, can share one result.
//
// A Cache is safe for concurrent use.  Concurrent requests for the same
// panel compute the layout only once.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*Layout
	order   []string // keys in insertion order, oldest first

	group     singleflight.Group
	newLayout func(width, height float64, cfg *Config) *Layout
}

// NewCache returns a cache holding up to size layouts.  If size is not
// positive, a default size is used.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &Cache{
		max:       size,
		entries:   make(map[string]*Layout),
		newLayout: NewLayout,
	}
}

// Layout returns the layout of a width×height panel, computing it if
// needed.  The result is shared and must not be modified.
func (c *Cache) Layout(width, height float64, cfg *Config) *Layout {
	key := cacheKey(width, height, cfg)

	if l, ok := c.lookup(key); ok {
		return l
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		// A call which finished just before this one may have filled
		// the entry.
		if l, ok := c.lookup(key); ok {
			return l, nil
		}

		l := c.newLayout(width, height, cfg)

		c.mu.Lock()
		defer c.mu.Unlock()
		if len(c.order) >= c.max {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.entries[key] = l
		c.order = append(c.order, key)
		return l, nil
	})
	return v.(*Layout)
}

func (c *Cache) lookup(key string) (*Layout, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.entries[key]
	return l, ok
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey encodes all inputs of NewLayout.
func cacheKey(width, height float64, cfg *Config) string {
	if cfg == nil {
		cfg = &Config{}
	}
	var b []byte
	num := func(x float64) {
		b = strconv.AppendFloat(b, x, 'g', -1, 64)
		b = append(b, ',')
	}
	num(width)
	num(height)
	for c := TopLeft; c <= BottomLeft; c++ {
		bevel := cfg.Bevels.Corner(c)
		num(bevel.Size)
		num(bevel.Angle)
	}
	for s := Top; s <= Left; s++ {
		b = append(b, '[')
		if e := cfg.Steps.Edge(s); e != nil {
			for _, seg := range e.Segments {
				num(seg.Start)
				num(seg.End)
				num(seg.Height)
			}
		}
		b = append(b, ']')
	}
	b = fmt.Appendf(b, "%T:%v", cfg.StrokeWidth, cfg.StrokeWidth)
	return string(b)
}
