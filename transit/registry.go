// SPDX-License-Identifier: MIT

package transit

import "github.com/katalvlaran/transport-catalogue/graph"

// Registry maps every graph edge to the Leg it represents.
// Edge ids are dense, so the registry is a slice indexed by EdgeID.
type Registry struct {
	legs []Leg
}

// register appends the leg for the edge that was just added as id.
// Panics if ids and legs drift apart.
func (r *Registry) register(id graph.EdgeID, leg Leg) {
	if int(id) != len(r.legs) {
		panic("transit: registry out of sync with graph edges")
	}
	r.legs = append(r.legs, leg)
}

// Leg returns the leg of edge id.
func (r *Registry) Leg(id graph.EdgeID) (Leg, bool) {
	if id < 0 || int(id) >= len(r.legs) {
		return nil, false
	}

	return r.legs[id], true
}

// Len returns the number of registered edges.
func (r *Registry) Len() int { return len(r.legs) }
