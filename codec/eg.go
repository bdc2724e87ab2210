package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/egsolver/egsolver/energy"
)

// Meta carries the "eg" attributes ParseEG could not map onto energy.Game
// directly (anything besides owner/label on a node, or effect on an
// edge), so WriteEG can restore them on round-trip. A nil Meta is treated
// as "no extra attributes" by WriteEG.
type Meta struct {
	Nodes map[int]map[string]json.RawMessage
	edges map[edgeKey][]map[string]json.RawMessage
}

type edgeKey struct {
	From, To int
	Effect   int64
}

type egDoc struct {
	Objective string            `json:"objective"`
	Nodes     []json.RawMessage `json:"nodes"`
	Edges     []json.RawMessage `json:"edges"`
}

// ParseEG parses the "eg" JSON format:
//
//	{ "objective": "energy",
//	  "nodes": [ [id, {"owner": 0|1, "label": "..."}], ... ],
//	  "edges": [ [src, trg, {"effect": int}], ... ] }
//
// id is a non-negative integer; owner is required and must be 0 or 1;
// effect is required and must be an integer. Unknown node/edge attributes
// are captured in the returned Meta rather than dropped, so WriteEG can
// reproduce them. Every vertex referenced as an edge endpoint must appear
// in "nodes"; otherwise a *ParseError is returned and no partial game.
func ParseEG(r io.Reader) (*energy.Game, *Meta, error) {
	var doc egDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, newParseError("malformed json", err.Error())
	}

	type parsedNode struct {
		id    int
		owner uint8
		label string
		extra map[string]json.RawMessage
	}

	nodes := make([]parsedNode, 0, len(doc.Nodes))
	maxID := -1
	for _, raw := range doc.Nodes {
		var tuple []json.RawMessage
		if err := json.Unmarshal(raw, &tuple); err != nil || len(tuple) != 2 {
			return nil, nil, newParseError("node must be a [id, attrs] pair", string(raw))
		}

		var id int
		if err := json.Unmarshal(tuple[0], &id); err != nil || id < 0 {
			return nil, nil, newParseError("node id must be a non-negative integer", string(tuple[0]))
		}

		var attrs map[string]json.RawMessage
		if err := json.Unmarshal(tuple[1], &attrs); err != nil {
			return nil, nil, newParseError("node attributes must be an object", string(tuple[1]))
		}

		ownerRaw, ok := attrs["owner"]
		if !ok {
			return nil, nil, newParseError("node missing required \"owner\" attribute", string(raw))
		}
		var owner int
		if err := json.Unmarshal(ownerRaw, &owner); err != nil || (owner != 0 && owner != 1) {
			return nil, nil, newParseError("owner must be 0 or 1", string(ownerRaw))
		}
		delete(attrs, "owner")

		var label string
		if labelRaw, ok := attrs["label"]; ok {
			if err := json.Unmarshal(labelRaw, &label); err != nil {
				return nil, nil, newParseError("label must be a string", string(labelRaw))
			}
			delete(attrs, "label")
		}

		nodes = append(nodes, parsedNode{id: id, owner: uint8(owner), label: label, extra: attrs})
		if id > maxID {
			maxID = id
		}
	}

	g := energy.NewGame(maxID + 1)
	meta := &Meta{Nodes: make(map[int]map[string]json.RawMessage), edges: make(map[edgeKey][]map[string]json.RawMessage)}

	seen := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.id] {
			return nil, nil, newParseError("duplicate node id", n.id)
		}
		seen[n.id] = true

		if err := g.SetOwner(n.id, n.owner); err != nil {
			return nil, nil, fmt.Errorf("codec: %w", err)
		}
		if n.label != "" {
			if err := g.SetLabel(n.id, n.label); err != nil {
				return nil, nil, fmt.Errorf("codec: %w", err)
			}
		}
		if len(n.extra) > 0 {
			meta.Nodes[n.id] = n.extra
		}
	}

	for _, raw := range doc.Edges {
		var tuple []json.RawMessage
		if err := json.Unmarshal(raw, &tuple); err != nil || len(tuple) != 3 {
			return nil, nil, newParseError("edge must be a [src, trg, attrs] triple", string(raw))
		}

		var src, trg int
		if err := json.Unmarshal(tuple[0], &src); err != nil {
			return nil, nil, newParseError("edge source must be an integer", string(tuple[0]))
		}
		if err := json.Unmarshal(tuple[1], &trg); err != nil {
			return nil, nil, newParseError("edge target must be an integer", string(tuple[1]))
		}
		if !seen[src] {
			return nil, nil, newParseError("edge source not in node set", src)
		}
		if !seen[trg] {
			return nil, nil, newParseError("edge target not in node set", trg)
		}

		var attrs map[string]json.RawMessage
		if err := json.Unmarshal(tuple[2], &attrs); err != nil {
			return nil, nil, newParseError("edge attributes must be an object", string(tuple[2]))
		}

		effectRaw, ok := attrs["effect"]
		if !ok {
			return nil, nil, newParseError("edge missing required \"effect\" attribute", string(raw))
		}
		var effect int64
		if err := json.Unmarshal(effectRaw, &effect); err != nil {
			return nil, nil, newParseError("effect must be an integer", string(effectRaw))
		}
		delete(attrs, "effect")

		if err := g.AddEdge(src, trg, effect); err != nil {
			return nil, nil, fmt.Errorf("codec: %w", err)
		}

		if len(attrs) > 0 {
			key := edgeKey{From: src, To: trg, Effect: effect}
			meta.edges[key] = append(meta.edges[key], attrs)
		}
	}

	return g, meta, nil
}

// WriteEG emits g as "eg" JSON, in the deterministic order energy.Game.Edges
// enumerates (ascending source vertex, insertion order). If meta is
// non-nil, attributes it captured for a vertex or edge are merged back in
// alongside owner/label/effect, restoring the original document modulo
// attribute ordering. Passing nil meta emits only owner/label/effect.
func WriteEG(w io.Writer, g *energy.Game, meta *Meta) error {
	n := g.NumVertices()
	nodeLines := make([]json.RawMessage, 0, n)
	for v := 0; v < n; v++ {
		attrs := map[string]json.RawMessage{}
		if meta != nil {
			for k, raw := range meta.Nodes[v] {
				attrs[k] = raw
			}
		}

		ownerJSON, _ := json.Marshal(g.Owner(v))
		attrs["owner"] = ownerJSON
		if label, ok := g.Label(v); ok {
			labelJSON, _ := json.Marshal(label)
			attrs["label"] = labelJSON
		}

		idJSON, _ := json.Marshal(v)
		attrsJSON, err := json.Marshal(attrs)
		if err != nil {
			return err
		}
		line, err := json.Marshal([]json.RawMessage{idJSON, attrsJSON})
		if err != nil {
			return err
		}
		nodeLines = append(nodeLines, line)
	}

	// meta.edges is drained as a FIFO per (from,to,effect) key, so repeated
	// identical edges recover their original attributes in input order.
	consumed := make(map[edgeKey]int)
	edgeLines := make([]json.RawMessage, 0, g.NumEdges())
	for _, t := range g.Edges() {
		attrs := map[string]json.RawMessage{}
		if meta != nil {
			key := edgeKey{From: t.From, To: t.To, Effect: t.Effect}
			if queue := meta.edges[key]; consumed[key] < len(queue) {
				for k, raw := range queue[consumed[key]] {
					attrs[k] = raw
				}
				consumed[key]++
			}
		}

		effectJSON, _ := json.Marshal(t.Effect)
		attrs["effect"] = effectJSON

		srcJSON, _ := json.Marshal(t.From)
		trgJSON, _ := json.Marshal(t.To)
		attrsJSON, err := json.Marshal(attrs)
		if err != nil {
			return err
		}
		line, err := json.Marshal([]json.RawMessage{srcJSON, trgJSON, attrsJSON})
		if err != nil {
			return err
		}
		edgeLines = append(edgeLines, line)
	}

	doc := struct {
		Objective string            `json:"objective"`
		Nodes     []json.RawMessage `json:"nodes"`
		Edges     []json.RawMessage `json:"edges"`
	}{Objective: "energy", Nodes: nodeLines, Edges: edgeLines}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
