package selection

// State holds the shared selection state: the identifier of the globally
// selected entity, or "" when nothing is selected
type State struct {
	Current string
}
