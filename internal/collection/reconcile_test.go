package collection

import "testing"

func window(ids ...string) []Edge {
	edges := make([]Edge, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, edge(id))
	}
	return edges
}

func TestApplyMutation_InsertHeadAndTail(t *testing.T) {
	t.Parallel()

	edges := window("a", "b")

	edges = applyMutation(edges, Insert{Node: record{id: "new"}, Position: InsertHead})
	if !sameIDs(edges, "new", "a", "b") {
		t.Fatalf("after head insert = %v, want [new a b]", edgeIDs(edges))
	}
	if edges[0].Cursor != "" {
		t.Fatalf("inserted cursor = %q, want empty placeholder", edges[0].Cursor)
	}

	edges = applyMutation(edges, Insert{Node: record{id: "last"}, Position: InsertTail})
	if !sameIDs(edges, "new", "a", "b", "last") {
		t.Fatalf("after tail insert = %v, want [new a b last]", edgeIDs(edges))
	}
}

func TestApplyMutation_InsertExistingReplacesInPlace(t *testing.T) {
	t.Parallel()

	edges := window("a", "b", "c")
	edges = applyMutation(edges, Insert{Node: record{id: "b", name: "renamed"}, Position: InsertHead})

	if !sameIDs(edges, "a", "b", "c") {
		t.Fatalf("edges = %v, want order unchanged [a b c]", edgeIDs(edges))
	}
	if got := edges[1].Node.(record).name; got != "renamed" {
		t.Fatalf("node payload = %q, want %q", got, "renamed")
	}
}

func TestApplyMutation_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	edges := window("a", "b", "c")

	edges = applyMutation(edges, Remove{NodeID: "b"})
	if !sameIDs(edges, "a", "c") {
		t.Fatalf("after remove = %v, want [a c]", edgeIDs(edges))
	}

	// Removing again, or removing an id never present, changes nothing.
	edges = applyMutation(edges, Remove{NodeID: "b"})
	edges = applyMutation(edges, Remove{NodeID: "ghost"})
	if !sameIDs(edges, "a", "c") {
		t.Fatalf("after repeated removes = %v, want [a c]", edgeIDs(edges))
	}
}

func TestApplyMutation_RemoveDoesNotClobberSnapshots(t *testing.T) {
	t.Parallel()

	edges := window("a", "b", "c")
	snapshot := make([]Edge, len(edges))
	copy(snapshot, edges)

	_ = applyMutation(edges, Remove{NodeID: "a"})

	if !sameIDs(snapshot, "a", "b", "c") {
		t.Fatalf("snapshot = %v after remove, want [a b c] untouched", edgeIDs(snapshot))
	}
}

func TestApplyMutation_UpdateReplacesPayload(t *testing.T) {
	t.Parallel()

	edges := window("a", "b")

	edges = applyMutation(edges, Update{NodeID: "a", Node: record{id: "a", name: "fresh"}})
	if got := edges[0].Node.(record).name; got != "fresh" {
		t.Fatalf("payload = %q, want %q", got, "fresh")
	}
	if edges[0].Cursor != "cur-a" {
		t.Fatalf("cursor = %q after update, want original cur-a", edges[0].Cursor)
	}

	edges = applyMutation(edges, Update{NodeID: "ghost", Node: record{id: "ghost"}})
	if !sameIDs(edges, "a", "b") {
		t.Fatalf("edges = %v after absent update, want [a b]", edgeIDs(edges))
	}
}

func TestController_MutationLeavesPageInfoAndStatusAlone(t *testing.T) {
	t.Parallel()

	gw := &scriptedGateway{pages: []Page{page(true, "a", "b")}}
	c, changes := newTestController(gw, 2)
	defer c.Close()

	c.SetParams(Params{})
	waitIdle(t, c, changes)
	before := c.State()

	c.ApplyMutation(Insert{Node: record{id: "local"}, Position: InsertHead})
	c.ApplyMutation(Remove{NodeID: "a"})

	st := c.State()
	if st.Status != StatusIdle {
		t.Fatalf("Status = %v after mutations, want idle", st.Status)
	}
	if st.PageInfo != before.PageInfo {
		t.Fatalf("PageInfo = %#v, want untouched %#v", st.PageInfo, before.PageInfo)
	}
	if !sameIDs(st.Edges, "local", "b") {
		t.Fatalf("Edges = %v, want [local b]", edgeIDs(st.Edges))
	}
	if got := gw.callCount(); got != 1 {
		t.Fatalf("gateway calls = %d, want 1; mutations never touch the network", got)
	}
}
