package match

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the case chain of a matcher as a tree, one node per case in
// declaration order, labelled with the case's condition. Intended for
// debugging matcher construction.
func (m Matcher[I, O]) Dump() string {
	return dumpCases("matcher (open)", m.cases, "")
}

// Dump renders the case chain of a closed matcher, with the fallback as the
// last node.
func (cm ClosedMatcher[I, O]) Dump() string {
	return dumpCases("matcher (closed)", cm.cases, "otherwise")
}

func dumpCases[I, O any](root string, cases []matchCase[I, O], last string) string {
	tree := tp.New()
	tree.SetValue(root)
	for i, c := range cases {
		tree.AddNode(fmt.Sprintf("case #%d: %s", i, c.label))
	}
	if last != "" {
		tree.AddNode(last)
	}
	return tree.String()
}
