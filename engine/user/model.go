package user

// User is a member record as served by the source feed
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Field names an editable column of a User
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldRole  Field = "role"
)

// Fields returns the editable fields in display order
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldRole}
}

func (f Field) String() string {
	return string(f)
}

// Title is the column header for the field
func (f Field) Title() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldRole:
		return "Role"
	default:
		return string(f)
	}
}

// Get returns the value of field f
func (u User) Get(f Field) string {
	switch f {
	case FieldName:
		return u.Name
	case FieldEmail:
		return u.Email
	case FieldRole:
		return u.Role
	default:
		return ""
	}
}

// Set overwrites field f with value. No validation is applied.
// It reports false for an unknown field.
func (u *User) Set(f Field, value string) bool {
	switch f {
	case FieldName:
		u.Name = value
	case FieldEmail:
		u.Email = value
	case FieldRole:
		u.Role = value
	default:
		return false
	}
	return true
}
