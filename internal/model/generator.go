package model

// GenerateRequest represents a password generation request.
// Symbols is a pointer so a missing field (nil -> default true) differs from an explicit false.
type GenerateRequest struct {
	Numbers []Number `json:"numbers"`
	Texts   []string `json:"texts"`
	Bits    int      `json:"bits"`
	Symbols *bool    `json:"symbols"`
	AddYear bool     `json:"add_year"`
	Count   int      `json:"count"`
}

// Candidate is one generated password.
type Candidate struct {
	ID       string  `json:"id"`
	Password string  `json:"password"`
	Bits     []Bit   `json:"bits"`
	Entropy  float64 `json:"entropy"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []Candidate `json:"passwords"`
}

// CategoryResponse describes one selectable number category.
type CategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
