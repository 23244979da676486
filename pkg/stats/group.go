package stats

import "github.com/samber/lo"

// orderedGroups collects values per key, remembering the order in which keys
// first appeared.
type orderedGroups[V any] struct {
	keys   []string
	values map[string][]V
}

func newOrderedGroups[V any]() *orderedGroups[V] {
	return &orderedGroups[V]{values: make(map[string][]V)}
}

func (g *orderedGroups[V]) add(key string, v ...V) {
	if _, ok := g.values[key]; !ok {
		g.keys = append(g.keys, key)
		g.values[key] = nil
	}
	g.values[key] = append(g.values[key], v...)
}

func (g *orderedGroups[V]) each(fn func(key string, values []V)) {
	for _, k := range g.keys {
		fn(k, g.values[k])
	}
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(lo.Sum(values)) / float64(len(values))
}
