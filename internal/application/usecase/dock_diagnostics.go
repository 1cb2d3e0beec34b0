package usecase

import (
	"fmt"
	"strings"

	"github.com/bnema/dockspace/internal/domain/entity"
)

// Validate checks tree consistency and window back-references, reporting
// every violation found.
func (c *DockContainer) Validate() error {
	var problems []string
	owners := make(map[*entity.Window]*entity.DockNode)

	var visit func(node *entity.DockNode, path string)
	visit = func(node *entity.DockNode, path string) {
		if node == nil {
			problems = append(problems, path+": nil node")
			return
		}

		if node.IsLeaf() {
			if node.Children[0] != nil || node.Children[1] != nil {
				problems = append(problems, path+": leaf has children")
			}
			if len(node.Windows) == 0 && node != c.root {
				problems = append(problems, path+": empty leaf below root")
			}
			if len(node.Windows) > 0 && (node.ActiveIndex < 0 || node.ActiveIndex >= len(node.Windows)) {
				problems = append(problems, fmt.Sprintf("%s: active index %d out of %d windows", path, node.ActiveIndex, len(node.Windows)))
			}
			for i, w := range node.Windows {
				if w == nil {
					problems = append(problems, fmt.Sprintf("%s[%d]: nil window", path, i))
					continue
				}
				if prev, dup := owners[w]; dup && prev != nil {
					problems = append(problems, fmt.Sprintf("%s[%d]: window %s held by two leaves", path, i, w.ID))
				}
				owners[w] = node
				if w.Leaf != node {
					problems = append(problems, fmt.Sprintf("%s[%d]: window %s back-reference points elsewhere", path, i, w.ID))
				}
			}
			return
		}

		if len(node.Windows) > 0 {
			problems = append(problems, path+": split node holds windows")
		}
		if node.SplitRatio <= 0 || node.SplitRatio >= 1 {
			problems = append(problems, fmt.Sprintf("%s: split ratio %v outside (0,1)", path, node.SplitRatio))
		}
		visit(node.Children[0], path+"/0")
		visit(node.Children[1], path+"/1")
	}
	visit(c.root, "root")

	if len(problems) > 0 {
		return fmt.Errorf("dock tree invalid:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
