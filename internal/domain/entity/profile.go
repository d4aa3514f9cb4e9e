package entity

// Profile is the public view of a user as seen by another user.
// Following is never stored on the profile itself; it is computed per
// request relative to the viewer.
type Profile struct {
	Username  string
	Bio       string
	Image     string
	Following bool
}

// User is an identity row owned by the external identity subsystem.
// This layer only reads it to resolve profiles and relationship edges.
type User struct {
	ID       int64
	Username string
	Bio      string
	Image    string
}
