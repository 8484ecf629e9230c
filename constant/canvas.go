package constant

// Canvas dimensions in terminal cells
const (
	// CanvasWidth is the number of columns ants may draw in
	CanvasWidth = 60

	// CanvasHeight is the number of rows ants may draw in
	CanvasHeight = 25
)

// Notices
const (
	// CompletionNotice is printed below the canvas once every ant has finished
	CompletionNotice = "Simulation complete."

	// InterruptedNotice replaces CompletionNotice when the run is cancelled
	InterruptedNotice = "Simulation interrupted."
)
