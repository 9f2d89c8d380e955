package common

const (
	IntentAdd    = "post_add"
	IntentRemove = "post_remove"
)

type SetOp int

const (
	SetAdd SetOp = iota + 1
	SetRemove
)

// SetPatch is an explicit add or remove of ids on a set-valued field.
// A bare replacement is never produced.
type SetPatch struct {
	Op  SetOp
	Ids []int64
}

// ParseSetPatch builds a patch from the request's intent flag and id list.
// A nil list means the field was not sent and yields no patch. action names
// the change in the error, e.g. "save posts".
func ParseSetPatch(action, intent string, ids []int64) (*SetPatch, error) {
	if ids == nil {
		return nil, nil
	}

	var op SetOp
	switch intent {
	case IntentAdd:
		op = SetAdd
	case IntentRemove:
		op = SetRemove
	default:
		return nil, Validation("field 'type' necessary to %s", action)
	}

	return &SetPatch{Op: op, Ids: UniqueIds(ids)}, nil
}

// UniqueIds drops duplicates keeping the first occurrence.
func UniqueIds(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
