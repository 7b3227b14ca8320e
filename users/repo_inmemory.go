package users

// InMemoryRepo is a fixed in-memory credential store. Passwords are held
// and compared in plain text; this is an inherited gap of the demo setup,
// not something a storage swap should paper over.
type InMemoryRepo struct {
	credentials map[string]string // email -> password
}

// NewInMemoryRepo creates a store holding the single demo credential.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		credentials: map[string]string{
			"demo@demo.com": "1234",
		},
	}
}

// NewInMemoryRepoWith creates a store from the given email -> password map.
func NewInMemoryRepoWith(credentials map[string]string) *InMemoryRepo {
	c := make(map[string]string, len(credentials))
	for email, password := range credentials {
		c[email] = password
	}
	return &InMemoryRepo{credentials: c}
}

var _ Repo = (*InMemoryRepo)(nil)

func (r *InMemoryRepo) Verify(email, password string) bool {
	stored, ok := r.credentials[email]
	return ok && stored == password
}
