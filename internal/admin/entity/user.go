package entity

// User is the roster view exposed to administrators. The password hash never
// leaves the store.
type User struct {
	ID       int64
	Username string
	Role     string
}
