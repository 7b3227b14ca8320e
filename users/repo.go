package users

// Repo verifies caller credentials. It is the seam through which a real
// user store can be substituted without touching the token service.
type Repo interface {
	Verify(email, password string) bool
}
