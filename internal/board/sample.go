package board

// Sample returns the starter board shown from the home menu.
func Sample() *Board {
	tasks := []Task{
		{ID: "task-1", Content: "Take out the garbage"},
		{ID: "task-2", Content: "Watch my favorite show"},
		{ID: "task-3", Content: "Charge my phone"},
		{ID: "task-4", Content: "Cook dinner"},
	}
	columns := []Column{
		{ID: "column-1", Title: "To do", TaskIDs: []string{"task-1", "task-2", "task-3", "task-4"}},
		{ID: "column-2", Title: "In progress"},
		{ID: "column-3", Title: "Done"},
	}
	b, err := New(tasks, columns)
	if err != nil {
		panic(err)
	}
	return b
}
