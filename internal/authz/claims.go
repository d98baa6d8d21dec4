package authz

import "github.com/golang-jwt/jwt/v4"

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
type JwtCustomClaims struct {
	SubjectID string `json:"sub_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	jwt.RegisteredClaims
}

// AuthContext converts the claims into the identity handlers consume.
func (c *JwtCustomClaims) AuthContext() AuthContext {
	return AuthContext{SubjectID: c.SubjectID, Email: c.Email, Role: c.Role}
}
