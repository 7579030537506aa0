package web

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// firstMessage returns the message of the first field error, or "".
func firstMessage(errs []FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Message
}

// SignupForm carries the signup page fields.
type SignupForm struct {
	Username  string `form:"username"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

// Validate checks the signup fields and returns field errors without
// touching any state.
func (f SignupForm) Validate() []FieldError {
	var errs []FieldError
	if f.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Username is required"})
	}
	if f.Password1 != f.Password2 {
		errs = append(errs, FieldError{Field: "password2", Message: "The password does not match"})
	}
	if len(f.Password1) < 8 {
		errs = append(errs, FieldError{Field: "password1", Message: "Password must be at least 8 characters"})
	}
	if len(f.Password1) > 72 {
		errs = append(errs, FieldError{Field: "password1", Message: "Password must be at most 72 characters"})
	}
	return errs
}

// LoginForm carries the login page fields.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TodoForm carries the create and edit page fields.
type TodoForm struct {
	Title string `form:"title"`
	Memo  string `form:"memo"`
}

// Validate checks the todo fields and returns field errors.
func (f TodoForm) Validate() []FieldError {
	var errs []FieldError
	if f.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}
	if len(f.Title) > 100 {
		errs = append(errs, FieldError{Field: "title", Message: "Title must be at most 100 characters"})
	}
	return errs
}
