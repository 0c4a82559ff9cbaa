package bstree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes of Red-Black trees are filled with their color, nodes of AVL trees are
// labelled with height and balance factor. Missing children are drawn as
// small empty circles.
func Tree2Dot[K any](tree *Tree[K], w io.Writer) error {
	var bf strings.Builder
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	nilid := 10000
	nodelist, edgelist := "", ""
	nodes, err := tree.TraverseNodes(PreOrder)
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	for _, node := range nodes {
		ID := ids.alloc(node)
		for _, child := range [2]*Node[K]{node.left, node.right} {
			if child == nil {
				nilid++
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		label := fmt.Sprintf("%v", node.key)
		if tree.Balancing() == AVL {
			label = fmt.Sprintf("%v\\nh=%d b=%+d", node.key, node.height, node.balance)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label,
			nodeDotStyles(node, tree.Balancing()))
	}
	bf.WriteString(nodelist)
	bf.WriteString(edgelist)
	bf.WriteString("}\n")
	_, err = io.WriteString(w, bf.String())
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K any](node *Node[K], b Balancing) string {
	s := ",style=filled,shape=circle"
	if b == RedBlack {
		if node.IsRed() {
			s += ",fontcolor=white,fillcolor=\"#cc2222\""
		} else {
			s += ",fontcolor=white,fillcolor=black"
		}
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
