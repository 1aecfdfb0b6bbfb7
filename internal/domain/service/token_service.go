package service

// TokenService defines the interface for generating and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// CreateToken signs a short-lived access token for the given subject.
	// An empty subject is signed as-is; such a token is rejected on decode.
	CreateToken(subject string) (string, error)

	// DecodeToken verifies a token string and returns its subject.
	// Signature, algorithm, expiry and a non-empty subject are all required;
	// no storage lookup happens here.
	DecodeToken(tokenString string) (string, error)
}
