// SPDX-License-Identifier: MIT

package decomp

import "github.com/katalvlaran/crndecomp/crn"

// Label returns the external label of pseudo-reaction i ("R1" for 0).
func (r *Result) Label(i int) string { return crn.Label(i) }

// PartitionLabels renders Partitions as labels, e.g. [[R1 R2] [R3 R4]].
func (r *Result) PartitionLabels() [][]string {
	out := make([][]string, len(r.Partitions))
	for k, part := range r.Partitions {
		out[k] = crn.Labels(part)
	}

	return out
}

// ReactionCount is r, the number of pseudo-reactions.
func (r *Result) ReactionCount() int {
	if r.Encoding == nil {
		return 0
	}

	return len(r.Encoding.Reactions)
}

// PartitionOf returns the position of pseudo-reaction i in Partitions, or
// -1 when it is unassigned.
func (r *Result) PartitionOf(i int) int {
	for k, part := range r.Partitions {
		for _, j := range part {
			if j == i {
				return k
			}
		}
	}

	return -1
}
