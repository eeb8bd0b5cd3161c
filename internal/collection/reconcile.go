package collection

// Mutation is a local cache edit applied to the loaded window without a
// refetch. The surrounding application performs the remote mutation through
// whatever path it likes (a dialog, a keybinding) and, on success, feeds
// the result here so the window stays correct without the round-trip and
// scroll-jump of a full reset.
type Mutation interface {
	isMutation()
}

// InsertPosition says where a locally created node lands in the window.
type InsertPosition int

const (
	InsertHead InsertPosition = iota
	InsertTail
)

// Insert adds a node the gateway has not yet issued a cursor for; the
// synthesized edge carries an empty placeholder cursor. That is sound
// because the continuation state lives in PageInfo, which Insert leaves
// untouched, so append pagination still resumes from the last fetched page.
type Insert struct {
	Node     Node
	Position InsertPosition
}

// Remove deletes the edge whose node has the given id, if present. Cursors
// reference positions in the source ordering, not the client's list, so
// removing even the structurally last fetched edge leaves the recorded
// endCursor valid.
type Remove struct {
	NodeID string
}

// Update replaces the node payload of the matching edge in place.
type Update struct {
	NodeID string
	Node   Node
}

func (Insert) isMutation() {}
func (Remove) isMutation() {}
func (Update) isMutation() {}

// applyMutation applies m to edges and returns the result. Every mutation
// is idempotent: Remove and Update of an absent id are no-ops, and an
// Insert whose id is already in the window replaces that node rather than
// duplicating it.
func applyMutation(edges []Edge, m Mutation) []Edge {
	switch m := m.(type) {
	case Insert:
		for i := range edges {
			if edges[i].Node.NodeID() == m.Node.NodeID() {
				edges[i].Node = m.Node
				return edges
			}
		}
		edge := Edge{Node: m.Node}
		if m.Position == InsertHead {
			return append([]Edge{edge}, edges...)
		}
		return append(edges, edge)
	case Remove:
		for i := range edges {
			if edges[i].Node.NodeID() == m.NodeID {
				return append(edges[:i:i], edges[i+1:]...)
			}
		}
		return edges
	case Update:
		for i := range edges {
			if edges[i].Node.NodeID() == m.NodeID {
				edges[i].Node = m.Node
				return edges
			}
		}
		return edges
	}
	return edges
}
