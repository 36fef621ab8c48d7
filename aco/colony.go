package aco

import (
	"fmt"
	"sort"
)

// inPool is the location of an idle ant; node ids start at 1.
const inPool = 0

// antSet is an ascending set of ant ids.
type antSet []int

// insert adds id, reporting false when it is already present.
func (s *antSet) insert(id int) bool {
	i := sort.SearchInts(*s, id)
	if i < len(*s) && (*s)[i] == id {
		return false
	}
	*s = append(*s, 0)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = id
	return true
}

// remove deletes id, reporting false when it is absent.
func (s *antSet) remove(id int) bool {
	i := sort.SearchInts(*s, id)
	if i >= len(*s) || (*s)[i] != id {
		return false
	}
	*s = append((*s)[:i], (*s)[i+1:]...)
	return true
}

// ids returns a copy of the set.
func (s antSet) ids() []int {
	return append([]int(nil), s...)
}

// colony is the ant arena plus the containers that own ant ids.
type colony struct {
	ants []Ant
	hops [][]int // ant id → dense arc indices traversed this epoch
	loc  []int   // ant id → node id, or inPool

	pool antSet
	at   []antSet // node id → ants currently at the node
}

// newColony creates ants 0..n-1 in the idle pool for a network of nodeCount nodes.
func newColony(n, commodities, nodeCount int) *colony {
	c := &colony{
		ants: make([]Ant, n),
		hops: make([][]int, n),
		loc:  make([]int, n),
		pool: make(antSet, 0, n),
		at:   make([]antSet, nodeCount+1),
	}
	for id := 0; id < n; id++ {
		c.ants[id] = Ant{
			ID:          id,
			Commodity:   id%commodities + 1,
			PackageSize: 1,
		}
		c.loc[id] = inPool
		c.pool = append(c.pool, id)
	}
	return c
}

// container returns the set that owns ants at location loc.
func (c *colony) container(loc int) *antSet {
	if loc == inPool {
		return &c.pool
	}
	return &c.at[loc]
}

// move transfers exclusive ownership of ant id to location to.
func (c *colony) move(id, to int) error {
	from := c.loc[id]
	if !c.container(from).remove(id) {
		return fmt.Errorf("ant %d not owned by its recorded location %d", id, from)
	}
	if !c.container(to).insert(id) {
		return fmt.Errorf("ant %d already owned by location %d", id, to)
	}
	c.loc[id] = to
	return nil
}

// population counts ants across the pool and every node.
func (c *colony) population() int {
	n := len(c.pool)
	for _, s := range c.at {
		n += len(s)
	}
	return n
}
