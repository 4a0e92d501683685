package state

// PageSize is the number of items PageUp and PageDown move by.
const PageSize = 10

// UpdatedIndex computes the next current index for a movement action. The
// result is clamped to [0, maxIndex]; non-movement actions return current.
// Callers must not invoke it for an empty list.
func UpdatedIndex(current, maxIndex int, action Action) int {
	switch action {
	case ActionFirst:
		return 0
	case ActionLast:
		return maxIndex
	case ActionPrevious:
		return max(0, current-1)
	case ActionNext:
		return min(maxIndex, current+1)
	case ActionPageUp:
		return max(0, current-PageSize)
	case ActionPageDown:
		return min(maxIndex, current+PageSize)
	default:
		return current
	}
}

// WrappedIndex behaves like UpdatedIndex except that Next past the end and
// Previous before the start wrap around. Paging still clamps.
func WrappedIndex(current, maxIndex int, action Action) int {
	switch action {
	case ActionNext:
		if current >= maxIndex {
			return 0
		}
	case ActionPrevious:
		if current <= 0 {
			return maxIndex
		}
	}
	return UpdatedIndex(current, maxIndex, action)
}

// IsMovement reports whether the action moves the current item.
func IsMovement(action Action) bool {
	switch action {
	case ActionFirst, ActionLast, ActionNext, ActionPrevious, ActionPageUp, ActionPageDown:
		return true
	}
	return false
}
