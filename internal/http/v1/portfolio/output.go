package portfolio

// GetOutput for GET /portfolio
type GetOutput struct {
	Body Portfolio
}
