package dispatcher

// getModuleName :
// Identifies this package in log output produced by its handlers and
// method filtering helpers.
func getModuleName() string {
	return "dispatcher"
}
