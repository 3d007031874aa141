package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the structure of the JSON Web Token (JWT) claims for GuffSuff.
// It includes standard claims required by the JWT specification and custom claims
// necessary for identifying and authorizing users within the application.
type Payload struct {
	// StandardClaims embeds the necessary JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer). These are crucial for token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// ID is the unique account identifier (UUID) of the token holder.
	ID string `json:"id"`

	// Role is the authorization level of the account at issue time. Verification
	// never re-reads the account, so a role change only takes effect once the
	// current token expires.
	Role string `json:"role"`
}
