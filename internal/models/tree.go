package models

/*
Node is one element of a word taxonomy. It is a closed set of variants:

  - Branch: named sub-categories, each holding another Node
  - Leaf:   the vocabulary sitting directly under a category
  - Other:  any value the taxonomy format allows but the analyzer ignores

Callers switch on the concrete type; there are no other implementations.
*/
type Node interface {
	node()
}

// Branch maps category names to their subtrees. Entry order carries no meaning.
type Branch map[string]Node

// Leaf holds words in their capitalized form ("Word").
type Leaf []string

// Other stands in for scalars and unsupported values.
type Other struct{}

func (Branch) node() {}
func (Leaf) node()   {}
func (Other) node()  {}
