// Package types defines the domain objects shared between the API client,
// the session store, and the UI screens.
package types

// Role constants as the API understands them.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the registered account as returned by the login endpoint and
// cached in the session store. JSON tags match the wire format exactly;
// the server spells phone number as "phoneno".
type User struct {
	ID      FlexID `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phoneno"`
	Role    string `json:"role,omitempty"`
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Initial returns the single character shown in the profile avatar circle.
func (u User) Initial() string {
	if u.Name == "" {
		return "?"
	}
	r := []rune(u.Name)
	return string([]rune{toUpper(r[0])})
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
