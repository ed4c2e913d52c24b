package seq

//Node represents a sequence tree node, leaves carry the literal token
type Node struct {
	token    string
	children []*Node
}

//NewNode creates a node, a node with children is a group, otherwise a leaf
func NewNode(token string, children ...*Node) *Node {
	return &Node{token: token, children: children}
}

//Count returns the number of child nodes
func (n *Node) Count() int {
	return len(n.children)
}

//Child returns i-th child node
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

//Token returns the leaf token, empty for a group node
func (n *Node) Token() string {
	return n.token
}

func (n *Node) append(child *Node) {
	n.children = append(n.children, child)
}
