package taxonomy

import "wordtree/internal/models"

// Stats summarizes the shape of a taxonomy.
type Stats struct {
	Categories int // top-level entries
	Branches   int
	Leaves     int
	Words      int
	Other      int
	// MaxDepth is the number of branch levels on the deepest path, root included.
	MaxDepth int
}

// Collect walks root and tallies its nodes.
func Collect(root models.Node) Stats {
	var s Stats
	if branch, ok := root.(models.Branch); ok {
		s.Categories = len(branch)
	}
	s.MaxDepth = s.walk(root)
	return s
}

// walk returns the number of branch levels on the deepest path below node.
func (s *Stats) walk(node models.Node) int {
	switch n := node.(type) {
	case models.Branch:
		s.Branches++
		deepest := 0
		for _, child := range n {
			if d := s.walk(child); d > deepest {
				deepest = d
			}
		}
		return deepest + 1
	case models.Leaf:
		s.Leaves++
		s.Words += len(n)
	default:
		s.Other++
	}
	return 0
}
