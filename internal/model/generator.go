package model

// GenerateRequest represents a password generation request as decoded from
// the command line. Zero values keep every built-in class enabled.
type GenerateRequest struct {
	Length        int
	NoLower       bool
	NoUpper       bool
	NoDigits      bool
	NoPunctuation bool
	PunctMinimal  bool
	URLSafe       bool
	Disable       []string
	Custom        string
	Count         int
	Hash          bool
}

// GeneratedPassword is one generated password, with its Argon2id hash when
// hashing was requested.
type GeneratedPassword struct {
	Password string
	Hash     string
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword
	Length    int
}
