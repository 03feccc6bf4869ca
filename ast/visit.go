package ast

// Visit walks n depth-first in source order, calling f twice per node:
// once on the way in (post=false) and once on the way out (post=true).
// Returning false from the pre call skips the node's children. An error
// aborts the walk.
func Visit(n Node, f func(n Node, post bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		walkErr := error(nil)
		components(n, func(c Node) bool {
			if err := Visit(c, f); err != nil {
				walkErr = err
				return false
			}
			return true
		}, nil)
		if walkErr != nil {
			return walkErr
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
