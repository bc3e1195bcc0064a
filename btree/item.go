package btree

/*
data items in a node are bare keys.
two keys are equal when neither sorts before the other.
*/
func (o *order[K]) equal(a, b K) bool {
	return !o.less(a, b) && !o.less(b, a)
}

// greater reports a > b.
func (o *order[K]) greater(a, b K) bool {
	return o.less(b, a)
}
