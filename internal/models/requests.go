package models

// SignupRequest is the payload for POST /user/signup and POST /admin/signup.
// Password must carry at least one lowercase, one uppercase and one
// non-alphanumeric character (the passwordcc rule).
type SignupRequest struct {
	Email     string `json:"email" binding:"required,min=3,max=100,email"`
	FirstName string `json:"firstName" binding:"required,min=3,max=100"`
	LastName  string `json:"lastName" binding:"required,min=3,max=100"`
	Password  string `json:"password" binding:"required,min=3,max=100,passwordcc"`
}

// SigninRequest is the payload for POST /user/signin and POST /admin/signin
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CourseRequest is the payload for course create and update. ImageURL is
// optional; price is required and must be non-negative. The pointer keeps
// "price": 0 distinguishable from a missing field.
type CourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

// PurchaseRequest is the payload for POST /course/purchase
type PurchaseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}
