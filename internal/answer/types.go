package answer

// QueryRequest is the JSON body for POST /query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the JSON response for POST /query. Answer is empty and
// Answered false when no intent recognized the query.
type QueryResponse struct {
	Query    string `json:"query"`
	Intent   string `json:"intent"`
	Answer   string `json:"answer"`
	Answered bool   `json:"answered"`
}

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"` // e.g. "2 plus 3 multiplied by 4" or "2+3*4"
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// PowerRequest is the JSON body for POST /calculator/power. Operands are
// decimal strings so they are not limited to float64 precision.
type PowerRequest struct {
	Base     string `json:"base"`
	Exponent string `json:"exponent"`
}

// PowerResponse is the JSON response for POST /calculator/power.
type PowerResponse struct {
	Base     string `json:"base"`
	Exponent string `json:"exponent"`
	Result   string `json:"result"`
}
