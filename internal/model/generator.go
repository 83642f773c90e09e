package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	EachClass bool  `json:"each_class"`
}

// GenerateResponse is a generated password with its strength report.
type GenerateResponse struct {
	Password    string           `json:"password"`
	Length      int              `json:"length"`
	Strength    StrengthResponse `json:"strength"`
	EntropyBits int              `json:"entropy_bits"`
	Cardinality string           `json:"cardinality"`
	CrackTime   string           `json:"crack_time"`
	Classes     string           `json:"classes"`
}

// StrengthRequest asks for the score of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the 7-point score of a password.
type StrengthResponse struct {
	Score int    `json:"score"`
	Max   int    `json:"max"`
	Label string `json:"label"`
	Color string `json:"color"`
}
