package dnd

// Reorder performs a stable array move on a sibling ID list: the source is
// removed from its old index and reinserted at the target's original index,
// which lands it after the target when moving forward and before the target
// when moving backward. The result is a permutation of ids; the caller
// assigns each ID its index as the new dense position.
//
// If either ID is missing, or they are equal, the input order is returned
// unchanged (copied).
func Reorder(ids []string, sourceID, targetID string) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	src, tgt := -1, -1
	for i, id := range ids {
		switch id {
		case sourceID:
			src = i
		case targetID:
			tgt = i
		}
	}
	if src < 0 || tgt < 0 || src == tgt || sourceID == targetID {
		return out
	}

	moved := out[src]
	out = append(out[:src], out[src+1:]...)
	rest := append(out[:tgt:tgt], append([]string{moved}, out[tgt:]...)...)
	return rest
}
